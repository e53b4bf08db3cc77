package routes

import (
	"net/http"
	"time"

	"hrmanager/handlers"
	"hrmanager/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSpecialistRoutes registers specialist CRUD endpoints.
func RegisterSpecialistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/specialists")
	{
		api.GET("", hb.GetSpecialistsHandler)
		api.POST("", hb.CreateSpecialistHandler)
		api.PUT("/:id", hb.UpdateSpecialistHandler)
		api.DELETE("/:id", hb.DeleteSpecialistHandler)
	}
}

// RegisterInterviewRoutes registers interview listing and booking endpoints.
func RegisterInterviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/interviews")
	{
		api.GET("", hb.GetInterviewsHandler)
		api.POST("", hb.CreateInterviewHandler)
	}
}

// RegisterSkillRoutes registers the skill catalog endpoint.
func RegisterSkillRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/skills", hb.GetSkillsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRootRoute registers the service banner.
func RegisterRootRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the HR Manager API!")
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

	RegisterRootRoute(r)
	RegisterSpecialistRoutes(r, hb)
	RegisterInterviewRoutes(r, hb)
	RegisterSkillRoutes(r, hb)
	RegisterHealthRoute(r)
}
