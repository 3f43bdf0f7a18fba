package main

import (
	"log"
	"os"
	"strconv"

	"streamhub/config"
	"streamhub/db"
	"streamhub/middlewares"
	"streamhub/routes"
	"streamhub/services"
	"streamhub/utils"
	"streamhub/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./config/config.prod.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetJWTExpiry(cfg.JWT.Expiry)
	websocket.SetJWTSecret(cfg.JWT.Secret)
	services.InitMovieService(cfg)

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	if cfg.Redis.Addr != "" {
		if err := db.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
			// Redis only backs rate limiting; the platform still works without it
			log.Printf("Redis unavailable, rate limiting disabled: %v", err)
		} else {
			log.Println("Connected to Redis")
		}
	}

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes for authentication
	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/verifyEmail", routes.VerifyEmailRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)
	router.POST("/forgotPassword", routes.ForgotPasswordRouteHandler)
	router.POST("/confirmForgotPassword", routes.VerifyForgotPasswordRouteHandler)
	router.POST("/verifyToken", routes.VerifyTokenRouteHandler)

	// Public discovery routes
	router.GET("/leaderboard", routes.GetLeaderboardRouteHandler)
	router.GET("/trending", routes.GetTrendingRouteHandler)
	router.GET("/movies", routes.GetMoviesRouteHandler)

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/achievements", routes.EvaluateAchievementsRouteHandler)
		auth.GET("/achievements", routes.GetAchievementProgressRouteHandler)

		auth.POST("/rewards/daily", routes.ClaimDailyRewardRouteHandler)
		auth.GET("/rewards/daily", routes.GetStreakStatusRouteHandler)

		auth.POST("/social/follow", routes.FollowUserRouteHandler)
		auth.GET("/social/follow", routes.GetFollowDataRouteHandler)

		auth.POST("/moderation/block", routes.ModerateUserRouteHandler)
		auth.GET("/moderation/block", routes.GetBlockedUsersRouteHandler)
		auth.GET("/moderation/queue", routes.GetModerationQueueRouteHandler)
		auth.POST("/moderation/queue", routes.HandleReportRouteHandler)

		auth.GET("/notifications", routes.GetNotificationsRouteHandler)
		auth.POST("/notifications", routes.MarkNotificationsReadRouteHandler)
		auth.DELETE("/notifications", routes.DeleteNotificationRouteHandler)

		auth.GET("/referral", routes.GetReferralRouteHandler)
		auth.POST("/referral", routes.ApplyReferralRouteHandler)

		auth.POST("/watch-history", routes.AddWatchHistoryRouteHandler)
		auth.GET("/watch-history", routes.GetWatchHistoryRouteHandler)
		auth.DELETE("/watch-history", routes.ClearWatchHistoryRouteHandler)
	}

	// Live platform events; the handler authenticates from the Authorization
	// header or a token query parameter, so it sits outside the middleware
	router.GET("/ws", websocket.EventsHandler)

	return router
}
