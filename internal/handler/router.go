package handler

import (
	"net/http"

	_ "places-api/docs"
	"places-api/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every API route.
func NewRouter(places *PlacesHandler, attractions *AttractionsHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/places", places.Search)
		api.GET("/places/:id", places.Details)
		api.GET("/attractions", attractions.List)
		api.GET("/search/suggest", attractions.Suggest)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
