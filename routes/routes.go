package routes

import (
	"net/http"
	"time"

	"billify/handlers"
	"billify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the export bill endpoints.
func RegisterExportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1")
	{
		api.POST("/export", hb.CreateExportBillHandler)
		api.GET("/export", hb.ListExportBillsHandler)
		api.GET("/export/:id", hb.GetExportBillByIDHandler)
		api.PUT("/export/:id", hb.UpdateExportBillHandler)
		api.DELETE("/export/:id", hb.DeleteExportBillHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint serving the latest
// monitor snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterExportRoutes(r, hb)
	RegisterHealthRoute(r)
}
