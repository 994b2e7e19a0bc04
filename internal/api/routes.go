package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		announcements := v1.Group("/announcements")
		{
			announcements.GET("", handler.ListAnnouncements)                // GET /api/v1/announcements?status=pending
			announcements.GET("/:id", handler.GetAnnouncement)              // GET /api/v1/announcements/:id
			announcements.PUT("/:id", handler.UpdateAnnouncement)           // PUT /api/v1/announcements/:id
			announcements.POST("/:id/approve", handler.ApproveAnnouncement) // POST /api/v1/announcements/:id/approve
			announcements.POST("/:id/reject", handler.RejectAnnouncement)   // POST /api/v1/announcements/:id/reject
			announcements.GET("/:id/post", handler.GetPost)                 // GET /api/v1/announcements/:id/post
			announcements.POST("/:id/post", handler.RegeneratePost)         // POST /api/v1/announcements/:id/post
		}

		posts := v1.Group("/posts")
		{
			posts.POST("/:id/approve", handler.ApprovePost) // POST /api/v1/posts/:id/approve
			posts.POST("/:id/posted", handler.MarkPosted)   // POST /api/v1/posts/:id/posted
		}

		v1.POST("/scan", handler.TriggerScan) // POST /api/v1/scan
		v1.GET("/stats", handler.GetStats)    // GET /api/v1/stats
	}
}
