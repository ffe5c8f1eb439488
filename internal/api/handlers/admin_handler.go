package handlers

import (
	"net/http"
	"strconv"

	"github.com/alumify/backend/internal/services"
	"github.com/alumify/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin     services.AdminService
	profiles  services.ProfileService
	analytics services.AnalyticsService
	exports   services.ExportService
}

func NewAdminHandler(admin services.AdminService, profiles services.ProfileService, analytics services.AnalyticsService, exports services.ExportService) *AdminHandler {
	return &AdminHandler{admin: admin, profiles: profiles, analytics: analytics, exports: exports}
}

func (h *AdminHandler) ListAlumni(c *gin.Context) {
	rows, err := h.admin.ListAlumni(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AdminHandler) GetAlumniSurvey(c *gin.Context) {
	bundle, err := h.admin.GetSurveyBundle(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}

func (h *AdminHandler) UpdateAlumni(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	var payload services.FullProfile
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AdminHandler.UpdateAlumni", "invalid request body", err))
		return
	}

	if err := h.profiles.UpdateFull(c.Request.Context(), actorID, c.Param("id"), &payload); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alumni profile updated successfully"})
}

func (h *AdminHandler) DeleteAlumni(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.admin.DeleteAlumni(c.Request.Context(), actorID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alumni deleted successfully"})
}

func (h *AdminHandler) Analytics(c *gin.Context) {
	out, err := h.analytics.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) RecentActivities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	rows, err := h.admin.RecentActivities(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AdminHandler) Export(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	out, err := h.exports.ExportRoster(c.Request.Context(), actorID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+out.FileName)
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

func (h *AdminHandler) GenerateReport(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	out, err := h.exports.AlumniReport(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+out.FileName)
	c.Data(http.StatusOK, out.ContentType, out.Data)
}
