package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Nour60555/Graduation-Project-KDD/internal/symptom/models"
)

const EventPredictionResult = "prediction_result"

// HistoryRecorder menyimpan prediksi yang berhasil.
type HistoryRecorder interface {
	Record(ctx context.Context, rec models.PredictionRecord) error
}

// Broadcaster meneruskan event ke dashboard yang terhubung lewat websocket.
type Broadcaster interface {
	Publish(msgType string, data interface{}) error
}

type SymptomService struct {
	Sessions *Registry

	predictor Predictor
	timeout   time.Duration
	history   HistoryRecorder
	feed      Broadcaster
}

// NewSymptomService merangkai registry sesi dengan predictor. history dan feed boleh nil.
func NewSymptomService(predictor Predictor, timeout, sessionTTL time.Duration, history HistoryRecorder, feed Broadcaster) *SymptomService {
	s := &SymptomService{
		predictor: predictor,
		timeout:   timeout,
		history:   history,
		feed:      feed,
	}
	s.Sessions = NewRegistry(s.NewWorkflow, sessionTTL)
	return s
}

func (s *SymptomService) NewWorkflow() *Workflow {
	return NewWorkflow(s.predictor, s.timeout)
}

func (s *SymptomService) CreateSession() (string, View) {
	id, wf := s.Sessions.Create()
	return id, wf.View()
}

func (s *SymptomService) Session(id string) (*Workflow, error) {
	return s.Sessions.Get(id)
}

// Submit menjalankan submit pada workflow milik sesi id.
func (s *SymptomService) Submit(ctx context.Context, id string) (*Submission, View, error) {
	wf, err := s.Sessions.Get(id)
	if err != nil {
		return nil, View{}, err
	}

	sub, err := wf.Submit(ctx)
	if err != nil {
		log.WithFields(log.Fields{"session_id": id, "kind": ErrorKind(err)}).WithError(err).Info("symptom submission failed")
		return nil, wf.View(), err
	}
	s.afterSuccess(ctx, id, sub)
	return sub, wf.View(), nil
}

// Check menjalankan satu kali validasi + prediksi pada workflow baru tanpa menyimpan sesi.
func (s *SymptomService) Check(ctx context.Context, values map[string]string) (*Submission, error) {
	wf := s.NewWorkflow()
	if err := wf.Fill(values); err != nil {
		return nil, err
	}
	sub, err := wf.Submit(ctx)
	if err != nil {
		return nil, err
	}
	s.afterSuccess(ctx, "", sub)
	return sub, nil
}

func (s *SymptomService) afterSuccess(ctx context.Context, sessionID string, sub *Submission) {
	rec := models.PredictionRecord{
		ID:               uuid.NewString(),
		SessionID:        sessionID,
		Payload:          sub.Payload,
		Prediction:       sub.Outcome.Result.Prediction,
		Verdict:          sub.Outcome.Verdict,
		Probability:      sub.Outcome.Result.Probability,
		ServiceTimestamp: sub.Outcome.Result.Timestamp,
		CreatedAt:        time.Now().UTC(),
	}

	logger := log.WithFields(log.Fields{"record_id": rec.ID, "verdict": rec.Verdict})
	logger.Info("prediction received")

	if s.history != nil {
		if err := s.history.Record(ctx, rec); err != nil {
			logger.WithError(err).Error("failed to record prediction history")
		}
	}
	if s.feed != nil {
		if err := s.feed.Publish(EventPredictionResult, rec.Event()); err != nil {
			logger.WithError(err).Warn("failed to broadcast prediction")
		}
	}
}
