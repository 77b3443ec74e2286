package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mazin-goub/Hameed/controllers"
	"github.com/mazin-goub/Hameed/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.POST("", controllers.CreateOrder)
		orders.GET("", controllers.GetMyOrders)
	}

	admin := server.Group("/admin/orders", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("", controllers.GetAllOrders)
		admin.GET("/open-count", controllers.GetOpenOrderCount)
		admin.PATCH("/:id/status", controllers.UpdateOrderStatus)
	}
}
