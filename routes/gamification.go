package routes

import (
	"streamhub/controllers"

	"github.com/gin-gonic/gin"
)

func EvaluateAchievementsRouteHandler(c *gin.Context) {
	controllers.EvaluateAchievements(c)
}

func GetAchievementProgressRouteHandler(c *gin.Context) {
	controllers.GetAchievementProgress(c)
}

func ClaimDailyRewardRouteHandler(c *gin.Context) {
	controllers.ClaimDailyReward(c)
}

func GetStreakStatusRouteHandler(c *gin.Context) {
	controllers.GetStreakStatus(c)
}
