package routes

import (
	"streamhub/controllers"

	"github.com/gin-gonic/gin"
)

func GetNotificationsRouteHandler(c *gin.Context) {
	controllers.GetNotifications(c)
}

func MarkNotificationsReadRouteHandler(c *gin.Context) {
	controllers.MarkNotificationsRead(c)
}

func DeleteNotificationRouteHandler(c *gin.Context) {
	controllers.DeleteNotification(c)
}
