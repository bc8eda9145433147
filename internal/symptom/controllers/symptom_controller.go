package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Nour60555/Graduation-Project-KDD/internal/common/response"
	"github.com/Nour60555/Graduation-Project-KDD/internal/symptom/models"
	"github.com/Nour60555/Graduation-Project-KDD/internal/symptom/services"
)

type SymptomController struct {
	Service *services.SymptomService
}

func NewSymptomController(service *services.SymptomService) *SymptomController {
	return &SymptomController{Service: service}
}

// EditFieldRequest adalah body PUT /sessions/:id/fields/:field. Value boleh string, angka, atau null.
type EditFieldRequest struct {
	Value interface{} `json:"value"`
}

// rawValue menerima nilai dari JSON dan mengubahnya ke teks mentah seperti input form.
// typed bernilai true hanya untuk string, yaitu teks yang diketik user.
func rawValue(v interface{}) (raw string, typed bool, err error) {
	switch val := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return val, true, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), false, nil
	}
	return "", false, fmt.Errorf("value must be a string, number or null")
}

// respondError memetakan error workflow ke status HTTP.
func respondError(c echo.Context, err error, data interface{}) error {
	var ve *services.ValidationError
	var se *services.ServiceError
	switch {
	case errors.As(err, &ve):
		return response.JSON(c, http.StatusUnprocessableEntity, err.Error(), data)
	case errors.Is(err, services.ErrSubmitInProgress), errors.Is(err, services.ErrAttemptDiscarded):
		return response.JSON(c, http.StatusConflict, err.Error(), data)
	case errors.As(err, &se):
		return response.JSON(c, http.StatusBadGateway, err.Error(), data)
	case errors.Is(err, services.ErrSessionNotFound):
		return response.JSON(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrUnknownField):
		return response.JSON(c, http.StatusBadRequest, err.Error(), nil)
	}
	return response.JSON(c, http.StatusInternalServerError, "Unexpected error: "+err.Error(), nil)
}

// GetFields mengembalikan tabel field, rentang nilai, dan grup form.
func (sc *SymptomController) GetFields(c echo.Context) error {
	return response.JSON(c, http.StatusOK, "Fields retrieved successfully", echo.Map{
		"groups": models.FieldGroups(),
		"fields": models.Fields(),
	})
}

// Check menjalankan validasi + prediksi sekali jalan tanpa sesi.
func (sc *SymptomController) Check(c echo.Context) error {
	var body map[string]interface{}
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return response.JSON(c, http.StatusBadRequest, "Invalid request payload: "+err.Error(), nil)
	}

	values := make(map[string]string, len(body))
	for key, v := range body {
		raw, _, err := rawValue(v)
		if err != nil {
			return response.JSON(c, http.StatusBadRequest, fmt.Sprintf("Invalid value for %q: %v", key, err), nil)
		}
		values[key] = raw
	}

	sub, err := sc.Service.Check(c.Request().Context(), values)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return respondError(c, err, echo.Map{"field": ve.Field})
		}
		return respondError(c, err, nil)
	}

	return response.JSON(c, http.StatusOK, sub.Outcome.Message, echo.Map{
		"outcome": sub.Outcome,
		"payload": sub.Payload,
	})
}

func (sc *SymptomController) CreateSession(c echo.Context) error {
	id, view := sc.Service.CreateSession()
	return response.JSON(c, http.StatusCreated, "Session created successfully", echo.Map{
		"id":   id,
		"view": view,
	})
}

func (sc *SymptomController) GetSession(c echo.Context) error {
	wf, err := sc.Service.Session(c.Param("id"))
	if err != nil {
		return respondError(c, err, nil)
	}
	return response.JSON(c, http.StatusOK, "Session retrieved successfully", wf.View())
}

func (sc *SymptomController) EditField(c echo.Context) error {
	wf, err := sc.Service.Session(c.Param("id"))
	if err != nil {
		return respondError(c, err, nil)
	}

	var req EditFieldRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, "Invalid request payload: "+err.Error(), nil)
	}
	raw, typed, err := rawValue(req.Value)
	if err != nil {
		return response.JSON(c, http.StatusBadRequest, err.Error(), nil)
	}

	// Angka JSON disimpan apa adanya, hanya teks yang disaring seperti input form.
	if typed {
		err = wf.Edit(c.Param("field"), raw)
	} else {
		err = wf.Fill(map[string]string{c.Param("field"): raw})
	}
	if err != nil {
		return respondError(c, err, nil)
	}
	return response.JSON(c, http.StatusOK, "Field updated", wf.View())
}

// FillTestData mengisi form dengan data contoh.
func (sc *SymptomController) FillTestData(c echo.Context) error {
	wf, err := sc.Service.Session(c.Param("id"))
	if err != nil {
		return respondError(c, err, nil)
	}
	if err := wf.Fill(models.DemoValues()); err != nil {
		return respondError(c, err, nil)
	}
	return response.JSON(c, http.StatusOK, "Test data entered", wf.View())
}

func (sc *SymptomController) Submit(c echo.Context) error {
	sub, view, err := sc.Service.Submit(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, view)
	}
	return response.JSON(c, http.StatusOK, sub.Outcome.Message, view)
}

func (sc *SymptomController) Reset(c echo.Context) error {
	wf, err := sc.Service.Session(c.Param("id"))
	if err != nil {
		return respondError(c, err, nil)
	}
	wf.Reset()
	return response.JSON(c, http.StatusOK, "Session reset", wf.View())
}

func (sc *SymptomController) DeleteSession(c echo.Context) error {
	if err := sc.Service.Sessions.Delete(c.Param("id")); err != nil {
		return respondError(c, err, nil)
	}
	return response.JSON(c, http.StatusOK, "Session deleted", nil)
}
