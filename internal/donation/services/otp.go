package services

import (
	"context"
	"crypto/subtle"

	log "github.com/sirupsen/logrus"

	"github.com/Nour60555/Graduation-Project-KDD/internal/donation/models"
)

// OTPGateway mengirim dan memverifikasi kode OTP untuk satu donasi.
type OTPGateway interface {
	Issue(ctx context.Context, d models.Donation) error
	Verify(d models.Donation, code string) bool
}

// StaticOTP adalah gateway tiruan: tidak ada yang dikirim, dan satu kode tetap selalu diterima.
type StaticOTP struct {
	Code string
}

func NewStaticOTP(code string) *StaticOTP {
	return &StaticOTP{Code: code}
}

func (o *StaticOTP) Issue(_ context.Context, d models.Donation) error {
	log.WithField("donation_id", d.ID).Info("OTP issued (simulated)")
	return nil
}

func (o *StaticOTP) Verify(_ models.Donation, code string) bool {
	return subtle.ConstantTimeCompare([]byte(code), []byte(o.Code)) == 1
}
