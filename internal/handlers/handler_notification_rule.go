package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
	"github.com/szabol/damage_report_app/internal/dto"
	"github.com/szabol/damage_report_app/internal/middleware"
)

// notificationRuleHandler handles administrator management of notification
// rules.
type notificationRuleHandler struct {
	ruleService portssvc.NotificationRuleSvcFacade
}

// registerNotificationRuleRoutes registers routes for rule administration.
func registerNotificationRuleRoutes(rg *gin.RouterGroup, ruleService portssvc.NotificationRuleSvcFacade) {
	h := &notificationRuleHandler{ruleService: ruleService}

	rules := rg.Group("/notification-rules")
	{
		rules.POST("", h.createRule)
		rules.GET("", h.listRules)
		rules.GET("/:id", h.getRule)
		rules.PUT("/:id", h.updateRule)
		rules.DELETE("/:id", h.deleteRule)
	}
}

func (h *notificationRuleHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateNotificationRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRule", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToNotificationRuleResponse(rule))
}

func (h *notificationRuleHandler) listRules(c *gin.Context) {
	rules, err := h.ruleService.ListRules(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	out := make([]dto.NotificationRuleResponse, len(rules))
	for i := range rules {
		out[i] = dto.ToNotificationRuleResponse(&rules[i])
	}
	c.JSON(http.StatusOK, gin.H{"rules": out})
}

func (h *notificationRuleHandler) getRule(c *gin.Context) {
	rule, err := h.ruleService.GetRuleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationRuleResponse(rule))
}

func (h *notificationRuleHandler) updateRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateNotificationRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRule", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationRuleResponse(rule))
}

func (h *notificationRuleHandler) deleteRule(c *gin.Context) {
	if err := h.ruleService.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
