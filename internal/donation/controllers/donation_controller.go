package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nour60555/Graduation-Project-KDD/internal/common/response"
	"github.com/Nour60555/Graduation-Project-KDD/internal/donation/models"
	"github.com/Nour60555/Graduation-Project-KDD/internal/donation/services"
)

type DonationController struct {
	Service *services.DonationService
}

func NewDonationController(service *services.DonationService) *DonationController {
	return &DonationController{Service: service}
}

type VerifyRequest struct {
	OTP string `json:"otp"`
}

func respondError(c echo.Context, err error) error {
	var fe *services.FormError
	switch {
	case errors.As(err, &fe):
		return response.JSON(c, http.StatusUnprocessableEntity, fe.Message, echo.Map{"field": fe.Field})
	case errors.Is(err, services.ErrDonationNotFound):
		return response.JSON(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidOTP):
		return response.JSON(c, http.StatusBadRequest, err.Error(), nil)
	}
	return response.JSON(c, http.StatusInternalServerError, "Unexpected error: "+err.Error(), nil)
}

// Start membuat donasi pending dan menerbitkan OTP.
func (dc *DonationController) Start(c echo.Context) error {
	var form models.DonationForm
	if err := c.Bind(&form); err != nil {
		return response.JSON(c, http.StatusBadRequest, "Invalid request payload: "+err.Error(), nil)
	}

	d, err := dc.Service.Start(c.Request().Context(), form)
	if err != nil {
		return respondError(c, err)
	}
	return response.JSON(c, http.StatusCreated, "OTP sent, please verify your donation", d)
}

func (dc *DonationController) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, "Invalid request payload: "+err.Error(), nil)
	}

	d, err := dc.Service.Verify(c.Request().Context(), c.Param("id"), req.OTP)
	if err != nil {
		return respondError(c, err)
	}
	return response.JSON(c, http.StatusOK, "Thank you for your donation!", d)
}

func (dc *DonationController) Cancel(c echo.Context) error {
	if err := dc.Service.Cancel(c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return response.JSON(c, http.StatusOK, "Donation cancelled", nil)
}
