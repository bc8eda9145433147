package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nour60555/Graduation-Project-KDD/internal/common/response"
	"github.com/Nour60555/Graduation-Project-KDD/internal/content/services"
)

type ContentController struct {
	Service *services.ContentService
}

func NewContentController(service *services.ContentService) *ContentController {
	return &ContentController{Service: service}
}

func (cc *ContentController) ListPages(c echo.Context) error {
	return response.JSON(c, http.StatusOK, "Pages retrieved successfully", cc.Service.List())
}

func (cc *ContentController) GetPage(c echo.Context) error {
	page, err := cc.Service.Page(c.Param("page"))
	if errors.Is(err, services.ErrPageNotFound) {
		return response.JSON(c, http.StatusNotFound, "Page not found", nil)
	}
	return response.JSON(c, http.StatusOK, "Page retrieved successfully", page)
}
