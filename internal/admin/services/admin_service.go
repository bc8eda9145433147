package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Nour60555/Graduation-Project-KDD/pkg/utils"
)

const TokenTTL = 12 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrLoginDisabled      = errors.New("admin login is not configured")
)

// AdminService mengautentikasi satu akun admin yang didefinisikan lewat konfigurasi.
type AdminService struct {
	username     string
	passwordHash string
	secret       string
	now          func() time.Time
}

func NewAdminService(username, passwordHash, secret string) *AdminService {
	return &AdminService{
		username:     username,
		passwordHash: passwordHash,
		secret:       secret,
		now:          time.Now,
	}
}

func (s *AdminService) Enabled() bool {
	return s.username != "" && s.passwordHash != "" && s.secret != ""
}

// Login mengembalikan token HS256 beserta waktu kedaluwarsanya.
func (s *AdminService) Login(username, password string) (string, time.Time, error) {
	if !s.Enabled() {
		return "", time.Time{}, ErrLoginDisabled
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil || !userOK {
		return "", time.Time{}, ErrInvalidCredentials
	}

	exp := s.now().Add(TokenTTL)
	token, err := utils.GenerateJWTToken(s.secret, s.username, utils.RoleAdmin, exp)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}
