package http

import (
	"github.com/gin-gonic/gin"
)

// RouterConfig holds the dependencies of NewRouter.
type RouterConfig struct {
	Parser  ClippingsParser
	Version string
}

// NewRouter creates the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// multipart bodies above this are spooled to disk by net/http
	router.MaxMultipartMemory = maxClippingsFileSize

	health := NewHealthController(cfg.Version)
	router.GET("/health", health.Status)

	clippings := NewClippingsController(cfg.Parser)
	api := router.Group("/api")
	{
		api.POST("/clippings/parse", clippings.Parse)
	}

	return router
}
