package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Nour60555/Graduation-Project-KDD/internal/admin/controllers"
	"github.com/Nour60555/Graduation-Project-KDD/internal/common/middlewares"
	"github.com/Nour60555/Graduation-Project-KDD/pkg/utils"
)

func RegisterAdminRoutes(api *echo.Group, ac *controllers.AdminController, jwtSecret string) {
	admin := api.Group("/admin")
	// Login tidak dilindungi oleh middleware JWT.
	admin.POST("/login", ac.Login)

	protected := admin.Group("", middlewares.JWTMiddleware(jwtSecret), middlewares.RequireRole(utils.RoleAdmin))
	protected.GET("/predictions", ac.ListPredictions)
	protected.GET("/donations", ac.ListDonations)
}
