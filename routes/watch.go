package routes

import (
	"streamhub/controllers"

	"github.com/gin-gonic/gin"
)

func AddWatchHistoryRouteHandler(c *gin.Context) {
	controllers.AddWatchHistory(c)
}

func GetWatchHistoryRouteHandler(c *gin.Context) {
	controllers.GetWatchHistory(c)
}

func ClearWatchHistoryRouteHandler(c *gin.Context) {
	controllers.ClearWatchHistory(c)
}
