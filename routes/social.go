package routes

import (
	"streamhub/controllers"

	"github.com/gin-gonic/gin"
)

func FollowUserRouteHandler(c *gin.Context) {
	controllers.FollowUser(c)
}

func GetFollowDataRouteHandler(c *gin.Context) {
	controllers.GetFollowData(c)
}
