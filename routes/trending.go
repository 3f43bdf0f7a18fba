package routes

import (
	"streamhub/controllers"

	"github.com/gin-gonic/gin"
)

func GetTrendingRouteHandler(c *gin.Context) {
	controllers.GetTrending(c)
}
