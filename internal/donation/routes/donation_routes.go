package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Nour60555/Graduation-Project-KDD/internal/donation/controllers"
)

func RegisterDonationRoutes(api *echo.Group, dc *controllers.DonationController) {
	donations := api.Group("/donations")
	donations.POST("", dc.Start)
	donations.POST("/:id/verify", dc.Verify)
	donations.DELETE("/:id", dc.Cancel)
}
