package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Nour60555/Graduation-Project-KDD/internal/donation/models"
	"github.com/Nour60555/Graduation-Project-KDD/pkg/utils"
)

const EventDonationVerified = "donation_verified"

var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrInvalidOTP       = errors.New("incorrect OTP, please try again")
)

// FormError menandai field form donasi yang tidak valid.
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string { return e.Message }

// DonationStore menyimpan donasi yang sudah terverifikasi.
type DonationStore interface {
	Save(ctx context.Context, d models.Donation) error
}

type Broadcaster interface {
	Publish(msgType string, data interface{}) error
}

type DonationService struct {
	otp   OTPGateway
	store DonationStore
	feed  Broadcaster
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	pending map[string]*models.Donation
}

// NewDonationService: store dan feed boleh nil. Donasi pending yang lebih tua dari
// pendingTTL dibuang oleh Sweep; nol berarti tidak pernah kedaluwarsa.
func NewDonationService(otp OTPGateway, store DonationStore, feed Broadcaster, pendingTTL time.Duration) *DonationService {
	return &DonationService{
		otp:     otp,
		store:   store,
		feed:    feed,
		ttl:     pendingTTL,
		now:     time.Now,
		pending: make(map[string]*models.Donation),
	}
}

// NormalizeForm membersihkan input seperti yang dilakukan form: nomor kartu dan nominal
// custom hanya angka, nomor kartu dipotong 14 digit.
func NormalizeForm(f models.DonationForm) models.DonationForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.CardNumber = utils.Truncate(utils.DigitsOnly(f.CardNumber), models.CardNumberLength)
	f.CustomAmount = utils.DigitsOnly(f.CustomAmount)
	return f
}

// ValidateForm memeriksa form yang sudah dinormalisasi dan mengembalikan nominal donasi.
func ValidateForm(f models.DonationForm) (int64, error) {
	if f.Name == "" {
		return 0, &FormError{Field: "name", Message: "name is required"}
	}
	if f.Email == "" || !strings.Contains(f.Email, "@") {
		return 0, &FormError{Field: "email", Message: "a valid email address is required"}
	}
	if len(f.CardNumber) != models.CardNumberLength {
		return 0, &FormError{Field: "card_number", Message: fmt.Sprintf("card number must be exactly %d digits", models.CardNumberLength)}
	}

	if f.Amount == models.AmountCustom {
		amount, err := strconv.ParseInt(f.CustomAmount, 10, 64)
		if err != nil || amount <= 0 {
			return 0, &FormError{Field: "custom_amount", Message: "custom amount must be a positive whole number"}
		}
		return amount, nil
	}
	amount, ok := models.PresetAmounts[f.Amount]
	if !ok {
		return 0, &FormError{Field: "amount", Message: "amount must be one of 10, 25, 50 or Custom"}
	}
	return amount, nil
}

// Start membuat donasi pending dan meminta gateway menerbitkan OTP.
func (s *DonationService) Start(ctx context.Context, form models.DonationForm) (models.Donation, error) {
	form = NormalizeForm(form)
	amount, err := ValidateForm(form)
	if err != nil {
		return models.Donation{}, err
	}

	d := models.Donation{
		ID:        uuid.NewString(),
		Name:      form.Name,
		Email:     form.Email,
		CardLast4: form.CardNumber[len(form.CardNumber)-4:],
		Amount:    amount,
		Status:    models.StatusPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.otp.Issue(ctx, d); err != nil {
		return models.Donation{}, fmt.Errorf("issue OTP: %w", err)
	}

	s.mu.Lock()
	s.pending[d.ID] = &d
	s.mu.Unlock()
	return d, nil
}

// Verify mencocokkan OTP. Jika cocok donasi menjadi verified, disimpan, dan dikeluarkan
// dari daftar pending. Jika penyimpanan gagal, donasi dikembalikan ke daftar pending.
func (s *DonationService) Verify(ctx context.Context, id, code string) (models.Donation, error) {
	code = utils.Truncate(utils.DigitsOnly(code), models.OTPLength)

	// Entri diambil dari map agar Save berjalan tanpa memegang lock.
	s.mu.Lock()
	d, ok := s.pending[id]
	if !ok {
		s.mu.Unlock()
		return models.Donation{}, ErrDonationNotFound
	}
	if !s.otp.Verify(*d, code) {
		s.mu.Unlock()
		return models.Donation{}, ErrInvalidOTP
	}
	delete(s.pending, id)
	s.mu.Unlock()

	verified := *d
	now := s.now().UTC()
	verified.Status = models.StatusVerified
	verified.VerifiedAt = &now

	if s.store != nil {
		if err := s.store.Save(ctx, verified); err != nil {
			s.mu.Lock()
			s.pending[id] = d
			s.mu.Unlock()
			return models.Donation{}, fmt.Errorf("save donation: %w", err)
		}
	}

	logger := log.WithFields(log.Fields{"donation_id": id, "amount": verified.Amount})
	logger.Info("donation verified")
	if s.feed != nil {
		event := map[string]interface{}{"id": verified.ID, "amount": verified.Amount, "verified_at": now}
		if err := s.feed.Publish(EventDonationVerified, event); err != nil {
			logger.WithError(err).Warn("failed to broadcast donation")
		}
	}
	return verified, nil
}

func (s *DonationService) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[id]; !ok {
		return ErrDonationNotFound
	}
	delete(s.pending, id)
	return nil
}

func (s *DonationService) Pending(id string) (models.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.pending[id]
	if !ok {
		return models.Donation{}, ErrDonationNotFound
	}
	return *d, nil
}

func (s *DonationService) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Sweep membuang donasi pending yang dibuat lebih lama dari TTL.
func (s *DonationService) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().UTC().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, d := range s.pending {
		if d.CreatedAt.Before(cutoff) {
			delete(s.pending, id)
			removed++
		}
	}
	return removed
}

// Run menjalankan Sweep secara berkala sampai ctx selesai.
func (s *DonationService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.WithField("removed", n).Debug("expired pending donations")
			}
		}
	}
}
