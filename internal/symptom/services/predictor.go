package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Nour60555/Graduation-Project-KDD/internal/symptom/models"
)

const maxResponseBytes = 1 << 20

// Predictor adalah kolaborator eksternal yang mengklasifikasikan hasil lab.
type Predictor interface {
	Predict(ctx context.Context, payload models.Payload) (models.PredictionResult, error)
}

// HTTPPredictor memanggil endpoint /predict lewat HTTP POST berisi JSON.
type HTTPPredictor struct {
	URL   string
	httpc *http.Client
}

func NewHTTPPredictor(url string, timeout time.Duration) *HTTPPredictor {
	return &HTTPPredictor{
		URL:   url,
		httpc: &http.Client{Timeout: timeout},
	}
}

func (p *HTTPPredictor) Predict(ctx context.Context, payload models.Payload) (models.PredictionResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return models.PredictionResult{}, &ServiceError{Message: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(body))
	if err != nil {
		return models.PredictionResult{}, &ServiceError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpc.Do(req)
	if err != nil {
		return models.PredictionResult{}, &ServiceError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return models.PredictionResult{}, &ServiceError{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return models.PredictionResult{}, &ServiceError{StatusCode: resp.StatusCode, Message: msg}
	}

	var result models.PredictionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return models.PredictionResult{}, &ServiceError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("invalid response from prediction service: %v", err),
			Err:        err,
		}
	}
	if strings.TrimSpace(result.Prediction) == "" {
		return models.PredictionResult{}, &ServiceError{StatusCode: resp.StatusCode, Message: `prediction service response is missing "prediction"`}
	}
	if strings.TrimSpace(result.Timestamp) == "" {
		return models.PredictionResult{}, &ServiceError{StatusCode: resp.StatusCode, Message: `prediction service response is missing "timestamp"`}
	}
	return result, nil
}
