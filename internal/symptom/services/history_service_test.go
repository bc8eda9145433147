package services

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nour60555/Graduation-Project-KDD/internal/symptom/models"
)

// payloadArg mencocokkan kolom payload berdasarkan isi JSON-nya.
type payloadArg struct {
	want models.Payload
}

func (a payloadArg) Match(v driver.Value) bool {
	b, ok := v.([]byte)
	if !ok {
		return false
	}
	var got models.Payload
	if err := json.Unmarshal(b, &got); err != nil {
		return false
	}
	return assert.ObjectsAreEqual(a.want, got)
}

var historyColumns = []string{"id", "session_id", "payload", "prediction", "verdict", "probability", "service_timestamp", "created_at"}

func newMockHistory(t *testing.T) (*HistoryService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewHistoryService(db), mock
}

func TestHistoryRecord(t *testing.T) {
	svc, mock := newMockHistory(t)

	var payload models.Payload
	age, hemo := 45.0, 12.5
	payload.Set(models.FieldAge, &age)
	payload.Set(models.FieldHemo, &hemo)
	prob := 0.91
	rec := models.PredictionRecord{
		ID:               "rec-1",
		SessionID:        "sess-1",
		Payload:          payload,
		Prediction:       "ckd",
		Verdict:          models.VerdictCKD,
		Probability:      &prob,
		ServiceTimestamp: "2025-01-01T00:00:00Z",
		CreatedAt:        time.Date(2025, 1, 1, 0, 0, 1, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO Prediction_History").
		WithArgs(rec.ID, rec.SessionID, payloadArg{want: payload}, "ckd", "ckd", 0.91, rec.ServiceTimestamp, rec.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.Record(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRecordWithoutProbability(t *testing.T) {
	svc, mock := newMockHistory(t)
	rec := models.PredictionRecord{ID: "rec-2", Prediction: "notckd", Verdict: models.VerdictNotCKD}

	mock.ExpectExec("INSERT INTO Prediction_History").
		WithArgs("rec-2", "", payloadArg{}, "notckd", "notckd", nil, "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.Record(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryListDecodesRows(t *testing.T) {
	svc, mock := newMockHistory(t)
	newer := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	rows := sqlmock.NewRows(historyColumns).
		AddRow("b", "", []byte(`{"age":60,"bp":null}`), "CKD", "ckd", 0.8, "2025-01-02T00:00:00Z", newer).
		AddRow("a", "sess", []byte(`{"sg":1.02}`), "notckd", "notckd", nil, "2025-01-01T23:00:00Z", older)
	mock.ExpectQuery("SELECT (.+) FROM Prediction_History\\s+ORDER BY created_at DESC\\s+LIMIT \\?").
		WithArgs(DefaultHistoryLimit).
		WillReturnRows(rows)

	records, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "b", records[0].ID)
	assert.Equal(t, models.VerdictCKD, records[0].Verdict)
	require.NotNil(t, records[0].Probability)
	assert.Equal(t, 0.8, *records[0].Probability)
	require.NotNil(t, records[0].Payload.Age)
	assert.Equal(t, 60.0, *records[0].Payload.Age)
	assert.Nil(t, records[0].Payload.BP)

	assert.Equal(t, "sess", records[1].SessionID)
	assert.Nil(t, records[1].Probability)
	require.NotNil(t, records[1].Payload.SG)
	assert.Equal(t, 1.02, *records[1].Payload.SG)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryListClampsLimit(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-5, DefaultHistoryLimit},
		{0, DefaultHistoryLimit},
		{10, 10},
		{MaxHistoryLimit, MaxHistoryLimit},
		{10000, MaxHistoryLimit},
	}
	for _, tc := range cases {
		svc, mock := newMockHistory(t)
		mock.ExpectQuery("SELECT (.+) FROM Prediction_History").
			WithArgs(tc.want).
			WillReturnRows(sqlmock.NewRows(historyColumns))

		records, err := svc.List(context.Background(), tc.in)
		require.NoError(t, err, "limit %d", tc.in)
		assert.Empty(t, records)
		assert.NoError(t, mock.ExpectationsWereMet(), "limit %d", tc.in)
	}
}

func TestHistoryListBadPayload(t *testing.T) {
	svc, mock := newMockHistory(t)
	mock.ExpectQuery("SELECT (.+) FROM Prediction_History").
		WithArgs(DefaultHistoryLimit).
		WillReturnRows(sqlmock.NewRows(historyColumns).
			AddRow("x", "", []byte(`not json`), "ckd", "ckd", nil, "", time.Now()))

	_, err := svc.List(context.Background(), 0)
	assert.ErrorContains(t, err, "decode payload of x")
}
