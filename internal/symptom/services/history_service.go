package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Nour60555/Graduation-Project-KDD/internal/symptom/models"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

type HistoryService struct {
	DB *sql.DB
}

func NewHistoryService(db *sql.DB) *HistoryService {
	return &HistoryService{DB: db}
}

// Record menyimpan satu prediksi ke tabel Prediction_History.
func (s *HistoryService) Record(ctx context.Context, rec models.PredictionRecord) error {
	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	var probability sql.NullFloat64
	if rec.Probability != nil {
		probability = sql.NullFloat64{Float64: *rec.Probability, Valid: true}
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO Prediction_History (id, session_id, payload, prediction, verdict, probability, service_timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.SessionID, payload, rec.Prediction, string(rec.Verdict), probability, rec.ServiceTimestamp, rec.CreatedAt)
	return err
}

// List mengembalikan riwayat terbaru lebih dulu.
func (s *HistoryService) List(ctx context.Context, limit int) ([]models.PredictionRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, session_id, payload, prediction, verdict, probability, service_timestamp, created_at
		FROM Prediction_History
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.PredictionRecord{}
	for rows.Next() {
		var (
			rec         models.PredictionRecord
			payload     []byte
			verdict     string
			probability sql.NullFloat64
		)
		if err := rows.Scan(&rec.ID, &rec.SessionID, &payload, &rec.Prediction, &verdict, &probability, &rec.ServiceTimestamp, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &rec.Payload); err != nil {
			return nil, fmt.Errorf("decode payload of %s: %w", rec.ID, err)
		}
		rec.Verdict = models.Verdict(verdict)
		if probability.Valid {
			p := probability.Float64
			rec.Probability = &p
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
