package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Nour60555/Graduation-Project-KDD/internal/symptom/models"
)

var (
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrUnknownField     = errors.New("unknown field")
	ErrSessionNotFound  = errors.New("symptom checker session not found")
	// ErrAttemptDiscarded dikembalikan ketika workflow di-reset selagi request masih berjalan.
	ErrAttemptDiscarded = errors.New("submission discarded by reset")
)

const (
	KindValidation = "validation"
	KindService    = "service"
)

// ValidationError menandai field pertama yang di luar rentang atau bukan angka.
type ValidationError struct {
	Field models.Field
	Label string
	Min   float64
	Max   float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s should be between %s and %s", e.Label, formatNumber(e.Min), formatNumber(e.Max))
}

// ServiceError membungkus kegagalan transport maupun respons non-2xx dari layanan prediksi.
type ServiceError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string { return e.Message }

func (e *ServiceError) Unwrap() error { return e.Err }

// ErrorKind mengklasifikasikan err ke salah satu dari dua jenis kegagalan workflow.
func ErrorKind(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return KindService
	}
	return ""
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
