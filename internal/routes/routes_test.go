package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminControllers "github.com/Nour60555/Graduation-Project-KDD/internal/admin/controllers"
	adminServices "github.com/Nour60555/Graduation-Project-KDD/internal/admin/services"
	contentControllers "github.com/Nour60555/Graduation-Project-KDD/internal/content/controllers"
	contentServices "github.com/Nour60555/Graduation-Project-KDD/internal/content/services"
	donationControllers "github.com/Nour60555/Graduation-Project-KDD/internal/donation/controllers"
	donationServices "github.com/Nour60555/Graduation-Project-KDD/internal/donation/services"
	symptomControllers "github.com/Nour60555/Graduation-Project-KDD/internal/symptom/controllers"
	symptomServices "github.com/Nour60555/Graduation-Project-KDD/internal/symptom/services"
	"github.com/Nour60555/Graduation-Project-KDD/ws"
)

// newApp merakit aplikasi lengkap tanpa database dengan layanan prediksi palsu.
func newApp(t *testing.T, predictURL string) (*httptest.Server, *ws.Hub) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := ws.NewHub()
	go hub.Run(ctx)

	content, err := contentServices.NewContentService()
	require.NoError(t, err)

	symptom := symptomServices.NewSymptomService(symptomServices.NewHTTPPredictor(predictURL, 0), 2*time.Second, time.Minute, nil, hub)
	donation := donationServices.NewDonationService(donationServices.NewStaticOTP("123456"), nil, hub, time.Minute)
	admin := adminServices.NewAdminService("", "", "secret")

	e := echo.New()
	Init(e, Controllers{
		Symptom:  symptomControllers.NewSymptomController(symptom),
		Donation: donationControllers.NewDonationController(donation),
		Content:  contentControllers.NewContentController(content),
		Admin:    adminControllers.NewAdminController(admin, nil, nil),
		Hub:      hub,
	}, "secret")

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv, hub
}

func post(t *testing.T, url, body string) map[string]interface{} {
	t.Helper()
	resp, err := http.Post(url, echo.MIMEApplicationJSON, strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestHealth(t *testing.T) {
	srv, _ := newApp(t, "http://127.0.0.1:1")
	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPredictionIsBroadcastOnLiveFeed(t *testing.T) {
	predictor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"prediction":"ckd","timestamp":"2025-01-01T00:00:00Z"}`))
	}))
	defer predictor.Close()

	srv, hub := newApp(t, predictor.URL)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	// sesi milik user lain: id-nya tidak boleh muncul di feed
	created := post(t, srv.URL+"/api/symptom-checker/sessions", "")
	require.EqualValues(t, http.StatusCreated, created["status"])
	sessionID := created["data"].(map[string]interface{})["id"].(string)
	base := srv.URL + "/api/symptom-checker/sessions/" + sessionID
	post(t, base+"/test-data", "")
	env := post(t, base+"/submit", "")
	assert.EqualValues(t, http.StatusOK, env["status"])

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), sessionID)

	var msg struct {
		Type string                 `json:"type"`
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, symptomServices.EventPredictionResult, msg.Type)
	assert.Equal(t, "ckd", msg.Data["verdict"])
	assert.NotContains(t, msg.Data, "session_id")
	assert.NotContains(t, msg.Data, "payload")
}

func TestDonationAndAdminWithoutDatabase(t *testing.T) {
	srv, _ := newApp(t, "http://127.0.0.1:1")

	env := post(t, srv.URL+"/api/donations",
		`{"name":"Nour","email":"nour@example.com","card_number":"12345678901234","amount":"10"}`)
	require.EqualValues(t, http.StatusCreated, env["status"])
	id := env["data"].(map[string]interface{})["id"].(string)

	env = post(t, srv.URL+"/api/donations/"+id+"/verify", `{"otp":"123456"}`)
	assert.EqualValues(t, http.StatusOK, env["status"])

	env = post(t, srv.URL+"/api/admin/login", `{"username":"admin","password":"x"}`)
	assert.EqualValues(t, http.StatusServiceUnavailable, env["status"])
}
