package routes

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hostelops/dormdesk/internal/app/controllers"
	"github.com/hostelops/dormdesk/internal/app/models"
	"github.com/hostelops/dormdesk/internal/app/models/dto"
	"github.com/hostelops/dormdesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	complaintController *controllers.ComplaintController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
	webDir string,
) {
	router.Use(middleware.CORS())

	// Unauthenticated health endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Student complaint routes ---
	complaints := api.Group("/complaints")
	complaints.Use(authMiddleware.JWTAuth())
	{
		complaints.POST("", complaintController.Create)
		complaints.GET("", complaintController.ListMine)
		complaints.DELETE("/:id", complaintController.Delete)
	}

	// --- Admin routes ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/complaints", adminController.ListAll)
		admin.PATCH("/complaints/:id", adminController.UpdateStatus)
		admin.GET("/stats", adminController.Stats)
	}

	// Static SPA assets
	if webDir != "" {
		router.StaticFile("/", filepath.Join(webDir, "index.html"))
		router.StaticFile("/app.js", filepath.Join(webDir, "app.js"))
		router.StaticFile("/styles.css", filepath.Join(webDir, "styles.css"))
	}

	// Unmatched API routes get a JSON 404; anything else falls through to
	// the SPA so client-side routing keeps working after a refresh.
	router.NoRoute(func(c *gin.Context) {
		if webDir != "" && c.Request.Method == http.MethodGet &&
			!strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.File(filepath.Join(webDir, "index.html"))
			return
		}
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Route not found."))
	})
}
