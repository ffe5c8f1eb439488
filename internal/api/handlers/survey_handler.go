package handlers

import (
	"net/http"

	"github.com/alumify/backend/internal/services"
	"github.com/alumify/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type SurveyHandler struct {
	svc services.SurveyService
}

func NewSurveyHandler(svc services.SurveyService) *SurveyHandler {
	return &SurveyHandler{svc: svc}
}

func (h *SurveyHandler) Submit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var sub services.SurveySubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SurveyHandler.Submit", "invalid request body", err))
		return
	}

	// One submission per alumni at the API surface; the reconciler itself
	// stays re-runnable.
	resp, err := h.svc.Status(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	if resp.IsCompleted {
		writeError(c, utils.E(utils.CodeConflict, "SurveyHandler.Submit", "survey already completed", nil))
		return
	}

	if err := h.svc.Submit(c.Request.Context(), userID, &sub); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Survey submitted successfully"})
}

func (h *SurveyHandler) UpdateEmployment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var upd services.EmploymentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SurveyHandler.UpdateEmployment", "invalid request body", err))
		return
	}

	if err := h.svc.UpdateEmployment(c.Request.Context(), userID, &upd); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employment status updated successfully"})
}

func (h *SurveyHandler) Status(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.svc.Status(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_completed": resp.IsCompleted,
		"completed_at": resp.CompletedAt,
	})
}

func (h *SurveyHandler) Data(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	row, err := h.svc.EmploymentData(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}
