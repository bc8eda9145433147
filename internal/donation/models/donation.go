package models

import "time"

const (
	CardNumberLength = 14
	OTPLength        = 6
	AmountCustom     = "Custom"
)

// PresetAmounts adalah pilihan nominal (dolar) pada form donasi.
var PresetAmounts = map[string]int64{"10": 10, "25": 25, "50": 50}

// DonationForm adalah body request POST /api/donations.
type DonationForm struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	CardNumber   string `json:"card_number"`
	Amount       string `json:"amount"`
	CustomAmount string `json:"custom_amount"`
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
)

// Donation tidak pernah menyimpan nomor kartu lengkap.
type Donation struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	CardLast4  string     `json:"card_last4"`
	Amount     int64      `json:"amount"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}
