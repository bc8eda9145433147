package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Nour60555/Graduation-Project-KDD/internal/symptom/controllers"
)

// RegisterSymptomRoutes mendaftarkan endpoint symptom checker di bawah group api.
func RegisterSymptomRoutes(api *echo.Group, sc *controllers.SymptomController) {
	checker := api.Group("/symptom-checker")
	checker.GET("/fields", sc.GetFields)
	checker.POST("/check", sc.Check)

	sessions := checker.Group("/sessions")
	sessions.POST("", sc.CreateSession)
	sessions.GET("/:id", sc.GetSession)
	sessions.DELETE("/:id", sc.DeleteSession)
	sessions.PUT("/:id/fields/:field", sc.EditField)
	sessions.POST("/:id/test-data", sc.FillTestData)
	sessions.POST("/:id/submit", sc.Submit)
	sessions.POST("/:id/reset", sc.Reset)
}
