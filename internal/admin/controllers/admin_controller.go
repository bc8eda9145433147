package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/Nour60555/Graduation-Project-KDD/internal/admin/services"
	"github.com/Nour60555/Graduation-Project-KDD/internal/common/response"
	donationModels "github.com/Nour60555/Graduation-Project-KDD/internal/donation/models"
	symptomModels "github.com/Nour60555/Graduation-Project-KDD/internal/symptom/models"
)

type PredictionLister interface {
	List(ctx context.Context, limit int) ([]symptomModels.PredictionRecord, error)
}

type DonationLister interface {
	ListVerified(ctx context.Context, limit int) ([]donationModels.Donation, error)
}

// AdminController: Predictions dan Donations boleh nil jika database tidak dikonfigurasi.
type AdminController struct {
	Service     *services.AdminService
	Predictions PredictionLister
	Donations   DonationLister
}

func NewAdminController(service *services.AdminService, predictions PredictionLister, donations DonationLister) *AdminController {
	return &AdminController{Service: service, Predictions: predictions, Donations: donations}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ac *AdminController) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, "Invalid request payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return response.JSON(c, http.StatusBadRequest, "Username and Password are required", nil)
	}

	token, exp, err := ac.Service.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, services.ErrLoginDisabled):
		return response.JSON(c, http.StatusServiceUnavailable, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		log.WithField("username", req.Username).Warn("admin login failed")
		return response.JSON(c, http.StatusUnauthorized, "Invalid username or password", nil)
	case err != nil:
		return response.JSON(c, http.StatusInternalServerError, "Failed to generate token: "+err.Error(), nil)
	}

	return response.JSON(c, http.StatusOK, "Login successful", echo.Map{
		"username":   req.Username,
		"token":      token,
		"expires_at": exp,
	})
}

// limitParam membaca query ?limit=; nilai kosong atau tidak valid berarti pakai default.
func limitParam(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		return 0
	}
	return limit
}

func (ac *AdminController) ListPredictions(c echo.Context) error {
	if ac.Predictions == nil {
		return response.JSON(c, http.StatusServiceUnavailable, "Prediction history is disabled: no database configured", nil)
	}
	records, err := ac.Predictions.List(c.Request().Context(), limitParam(c))
	if err != nil {
		log.WithError(err).Error("failed to list prediction history")
		return response.JSON(c, http.StatusInternalServerError, "Failed to retrieve prediction history", nil)
	}
	return response.JSON(c, http.StatusOK, "Prediction history retrieved successfully", records)
}

func (ac *AdminController) ListDonations(c echo.Context) error {
	if ac.Donations == nil {
		return response.JSON(c, http.StatusServiceUnavailable, "Donation listing is disabled: no database configured", nil)
	}
	donations, err := ac.Donations.ListVerified(c.Request().Context(), limitParam(c))
	if err != nil {
		log.WithError(err).Error("failed to list donations")
		return response.JSON(c, http.StatusInternalServerError, "Failed to retrieve donations", nil)
	}
	return response.JSON(c, http.StatusOK, "Donations retrieved successfully", donations)
}
