package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mazin-goub/Hameed/controllers"
	"github.com/mazin-goub/Hameed/middlewares"
)

func MenuRoutes(server *gin.Engine) {
	server.GET("/menu", controllers.GetMenu)
	server.POST("/menu/seed", controllers.SeedMenu)

	admin := server.Group("/admin/menu", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("", controllers.GetAllMenuItems)
		admin.POST("", controllers.CreateMenuItem)
		admin.PATCH("/:id", controllers.UpdateMenuItem)
		admin.DELETE("/:id", controllers.DeleteMenuItem)
		admin.POST("/upload-url", controllers.RequestImageUploadSlot)
	}
}
