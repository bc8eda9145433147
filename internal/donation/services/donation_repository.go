package services

import (
	"context"
	"database/sql"

	"github.com/Nour60555/Graduation-Project-KDD/internal/donation/models"
)

const (
	DefaultDonationLimit = 50
	MaxDonationLimit     = 500
)

type DonationRepository struct {
	DB *sql.DB
}

func NewDonationRepository(db *sql.DB) *DonationRepository {
	return &DonationRepository{DB: db}
}

func (r *DonationRepository) Save(ctx context.Context, d models.Donation) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO Donation (id, name, email, card_last4, amount, status, created_at, verified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, d.ID, d.Name, d.Email, d.CardLast4, d.Amount, string(d.Status), d.CreatedAt, d.VerifiedAt)
	return err
}

// ListVerified mengembalikan donasi terverifikasi, terbaru lebih dulu.
func (r *DonationRepository) ListVerified(ctx context.Context, limit int) ([]models.Donation, error) {
	if limit <= 0 {
		limit = DefaultDonationLimit
	}
	if limit > MaxDonationLimit {
		limit = MaxDonationLimit
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, card_last4, amount, status, created_at, verified_at
		FROM Donation
		WHERE status = ?
		ORDER BY verified_at DESC
		LIMIT ?
	`, string(models.StatusVerified), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	donations := []models.Donation{}
	for rows.Next() {
		var (
			d          models.Donation
			status     string
			verifiedAt sql.NullTime
		)
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.CardLast4, &d.Amount, &status, &d.CreatedAt, &verifiedAt); err != nil {
			return nil, err
		}
		d.Status = models.Status(status)
		if verifiedAt.Valid {
			t := verifiedAt.Time
			d.VerifiedAt = &t
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}
