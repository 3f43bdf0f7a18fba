package controllers

import (
	"log"
	"net/http"

	"streamhub/services"

	"github.com/gin-gonic/gin"
)

// GetMovies proxies the scraped third-party movie listings. The feed is
// unreliable; upstream failures surface as 502 with an empty list.
func GetMovies(c *gin.Context) {
	category := c.DefaultQuery("category", "home")

	movies, err := services.FetchMovieListings(c.Request.Context(), category)
	if err != nil {
		log.Printf("Movie scraper error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "movies": []services.Movie{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"movies": movies, "count": len(movies)})
}
