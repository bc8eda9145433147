package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Nour60555/Graduation-Project-KDD/internal/content/controllers"
)

func RegisterContentRoutes(api *echo.Group, cc *controllers.ContentController) {
	content := api.Group("/content")
	content.GET("", cc.ListPages)
	content.GET("/:page", cc.GetPage)
}
