package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mazin-goub/Hameed/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
