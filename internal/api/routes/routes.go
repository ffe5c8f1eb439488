package routes

import (
	"github.com/alumify/backend/internal/api/handlers"
	"github.com/alumify/backend/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Auth    *handlers.AuthHandler
	Survey  *handlers.SurveyHandler
	Profile *handlers.ProfileHandler
	Admin   *handlers.AdminHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public auth endpoints
	r.POST("/auth/register", d.Auth.Register)
	r.POST("/auth/login", d.Auth.Login)
	r.POST("/auth/google", d.Auth.Google)

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.POST("/survey/submit", d.Survey.Submit)
	auth.PUT("/survey/update", d.Survey.UpdateEmployment)
	auth.GET("/survey/status", d.Survey.Status)
	auth.GET("/survey/data", d.Survey.Data)

	auth.GET("/profile/me", d.Profile.Me)
	auth.PUT("/profile/update", d.Profile.Update)

	auth.PUT("/user/change-password", d.Auth.ChangePassword)
	auth.POST("/user/accept-privacy", d.Auth.AcceptPrivacy)
	auth.GET("/user/privacy-status", d.Auth.PrivacyStatus)

	// Admin-only
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireAdmin())

	admin.GET("/alumni", d.Admin.ListAlumni)
	admin.GET("/alumni/:id", d.Admin.GetAlumniSurvey)
	admin.PUT("/alumni/:id", d.Admin.UpdateAlumni)
	admin.DELETE("/alumni/:id", d.Admin.DeleteAlumni)
	admin.GET("/analytics", d.Admin.Analytics)
	admin.GET("/recent-activities", d.Admin.RecentActivities)
	admin.GET("/export", d.Admin.Export)
	admin.GET("/generate-report/:id", d.Admin.GenerateReport)
}
