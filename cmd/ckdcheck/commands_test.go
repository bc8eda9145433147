package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type recorder struct {
	mu     sync.Mutex
	bodies []map[string]interface{}
}

func (r *recorder) all() []map[string]interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]map[string]interface{}(nil), r.bodies...)
}

func fakeService(t *testing.T, label string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		rec.mu.Lock()
		rec.bodies = append(rec.bodies, body)
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"prediction":"` + label + `","timestamp":"2025-01-01T00:00:00Z"}`))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestFieldsCommand(t *testing.T) {
	out, err := execute(t, "fields")
	require.NoError(t, err)
	assert.Contains(t, out, "wbcc")
	assert.Contains(t, out, "1.025")
	assert.Equal(t, 13, strings.Count(out, "\n"))
}

func TestPredictCommand(t *testing.T) {
	srv, bodies := fakeService(t, "notckd")

	out, err := execute(t, "predict", "--url", srv.URL, "--age", "45", "--sg", "1.02")
	require.NoError(t, err)
	assert.Contains(t, out, "Prediction: notckd")

	require.Len(t, bodies.all(), 1)
	body := bodies.all()[0]
	assert.EqualValues(t, 45, body["age"])
	assert.EqualValues(t, 1.02, body["sg"])
	assert.Nil(t, body["bp"])
}

func TestPredictCommandValidationError(t *testing.T) {
	srv, bodies := fakeService(t, "ckd")

	_, err := execute(t, "predict", "--url", srv.URL, "--age", "200")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Age")
	assert.Empty(t, bodies.all())
}

func TestPredictCommandRejectsNegativeValue(t *testing.T) {
	srv, bodies := fakeService(t, "ckd")

	_, err := execute(t, "predict", "--url", srv.URL, "--bp=-80")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Blood Pressure")
	assert.Empty(t, bodies.all())
}

func TestTestCaseCommand(t *testing.T) {
	srv, bodies := fakeService(t, "ckd")

	out, err := execute(t, "testcase", "1", "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Test case 1")
	require.Len(t, bodies.all(), 1)
	assert.EqualValues(t, 1.005, bodies.all()[0]["sg"])

	_, err = execute(t, "testcase", "3", "--url", srv.URL)
	assert.Error(t, err)
}
