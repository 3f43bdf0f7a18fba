package routes

import (
	"streamhub/controllers"

	"github.com/gin-gonic/gin"
)

func GetReferralRouteHandler(c *gin.Context) {
	controllers.GetReferral(c)
}

func ApplyReferralRouteHandler(c *gin.Context) {
	controllers.ApplyReferral(c)
}
