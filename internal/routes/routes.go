package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	adminControllers "github.com/Nour60555/Graduation-Project-KDD/internal/admin/controllers"
	adminRoutes "github.com/Nour60555/Graduation-Project-KDD/internal/admin/routes"
	"github.com/Nour60555/Graduation-Project-KDD/internal/common/response"
	contentControllers "github.com/Nour60555/Graduation-Project-KDD/internal/content/controllers"
	contentRoutes "github.com/Nour60555/Graduation-Project-KDD/internal/content/routes"
	donationControllers "github.com/Nour60555/Graduation-Project-KDD/internal/donation/controllers"
	donationRoutes "github.com/Nour60555/Graduation-Project-KDD/internal/donation/routes"
	symptomControllers "github.com/Nour60555/Graduation-Project-KDD/internal/symptom/controllers"
	symptomRoutes "github.com/Nour60555/Graduation-Project-KDD/internal/symptom/routes"
	"github.com/Nour60555/Graduation-Project-KDD/ws"
)

// Controllers mengumpulkan semua controller yang didaftarkan oleh Init.
type Controllers struct {
	Symptom  *symptomControllers.SymptomController
	Donation *donationControllers.DonationController
	Content  *contentControllers.ContentController
	Admin    *adminControllers.AdminController
	Hub      *ws.Hub
}

// Init menginisialisasi semua routes menggunakan Echo framework
func Init(e *echo.Echo, c Controllers, jwtSecret string) {
	api := e.Group("/api")
	api.GET("/health", func(ctx echo.Context) error {
		return response.JSON(ctx, http.StatusOK, "OK", nil)
	})

	symptomRoutes.RegisterSymptomRoutes(api, c.Symptom)
	donationRoutes.RegisterDonationRoutes(api, c.Donation)
	contentRoutes.RegisterContentRoutes(api, c.Content)
	adminRoutes.RegisterAdminRoutes(api, c.Admin, jwtSecret)

	// Live feed hasil prediksi dan donasi
	e.GET("/ws", ws.ServeWS(c.Hub))
}
