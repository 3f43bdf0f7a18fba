package routes

import (
	"streamhub/controllers"

	"github.com/gin-gonic/gin"
)

func GetMoviesRouteHandler(c *gin.Context) {
	controllers.GetMovies(c)
}
