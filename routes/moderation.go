package routes

import (
	"streamhub/controllers"

	"github.com/gin-gonic/gin"
)

func ModerateUserRouteHandler(c *gin.Context) {
	controllers.ModerateUser(c)
}

func GetBlockedUsersRouteHandler(c *gin.Context) {
	controllers.GetBlockedUsers(c)
}

func GetModerationQueueRouteHandler(c *gin.Context) {
	controllers.GetModerationQueue(c)
}

func HandleReportRouteHandler(c *gin.Context) {
	controllers.HandleReport(c)
}
