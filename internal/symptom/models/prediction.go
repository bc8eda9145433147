package models

import (
	"strings"
	"time"
)

// PredictionResult adalah body sukses dari layanan prediksi.
type PredictionResult struct {
	Prediction  string   `json:"prediction"`
	Timestamp   string   `json:"timestamp"`
	Probability *float64 `json:"probability,omitempty"`
	Client      string   `json:"client,omitempty"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// CheckedAt mem-parsing timestamp dari layanan. Layanan Python mengirim format
// "YYYY-MM-DD HH:MM:SS" tanpa zona waktu.
func (r PredictionResult) CheckedAt() (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, r.Timestamp); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type Verdict string

const (
	VerdictCKD     Verdict = "ckd"
	VerdictNotCKD  Verdict = "notckd"
	VerdictUnknown Verdict = "unknown"
)

// ClassifyLabel mencocokkan label tanpa memperhatikan huruf besar/kecil.
func ClassifyLabel(label string) Verdict {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case string(VerdictCKD):
		return VerdictCKD
	case string(VerdictNotCKD):
		return VerdictNotCKD
	}
	return VerdictUnknown
}

func (v Verdict) Message() string {
	switch v {
	case VerdictCKD:
		return "You are classified as having Chronic Kidney Disease (CKD)."
	case VerdictNotCKD:
		return "You are not classified as having CKD."
	}
	return "Unexpected result."
}

// Outcome adalah hasil prediksi yang siap ditampilkan.
type Outcome struct {
	Result  PredictionResult `json:"result"`
	Verdict Verdict          `json:"verdict"`
	Message string           `json:"message"`
}

func NewOutcome(r PredictionResult) Outcome {
	v := ClassifyLabel(r.Prediction)
	return Outcome{Result: r, Verdict: v, Message: v.Message()}
}

// PredictionRecord adalah satu baris riwayat prediksi.
type PredictionRecord struct {
	ID               string    `json:"id"`
	SessionID        string    `json:"session_id,omitempty"`
	Payload          Payload   `json:"payload"`
	Prediction       string    `json:"prediction"`
	Verdict          Verdict   `json:"verdict"`
	Probability      *float64  `json:"probability,omitempty"`
	ServiceTimestamp string    `json:"service_timestamp"`
	CreatedAt        time.Time `json:"created_at"`
}

// PredictionEvent adalah data publik yang dikirim ke live feed. Tanpa session_id dan
// tanpa nilai lab, karena feed bisa dibuka siapa saja.
type PredictionEvent struct {
	ID        string    `json:"id"`
	Verdict   Verdict   `json:"verdict"`
	CreatedAt time.Time `json:"created_at"`
}

func (r PredictionRecord) Event() PredictionEvent {
	return PredictionEvent{ID: r.ID, Verdict: r.Verdict, CreatedAt: r.CreatedAt}
}
