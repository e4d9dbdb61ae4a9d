package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
	"github.com/szabol/damage_report_app/internal/dto"
	"github.com/szabol/damage_report_app/internal/middleware"
)

// reportHandler handles HTTP requests related to damage reports.
type reportHandler struct {
	reportService     portssvc.ReportSvcFacade
	transitionService portssvc.TransitionSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade, ts portssvc.TransitionSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs, transitionService: ts}
}

// registerReportRoutes registers routes related to reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade, transitionService portssvc.TransitionSvcFacade) {
	h := newReportHandler(reportService, transitionService)

	reports := rg.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
		reports.POST("/:id/transition", h.transitionReport)
		reports.PUT("/:id/damage-id", h.updateDamageID)
		reports.GET("/:id/history", h.listHistory)
		reports.GET("/:id/payments", h.listClosingPayments)
	}
}

func (h *reportHandler) createReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReport", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.reportService.CreateReport(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToReportResponse(report))
}

func (h *reportHandler) getReport(c *gin.Context) {
	report, err := h.reportService.GetReportByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

func (h *reportHandler) listReports(c *gin.Context) {
	var params dto.ListReportsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.reportService.ListReports(c.Request.Context(), params)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *reportHandler) transitionReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transition", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.transitionService.Transition(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		// The transition may have been committed before a notification
		// failure; report the partial success when a report came back.
		if report != nil {
			logger.Error("Transition committed but notifications failed", "error", err.Error())
			c.JSON(http.StatusOK, dto.ToReportResponse(report))
			return
		}
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

func (h *reportHandler) updateDamageID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDamageIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDamageID", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.reportService.UpdateDamageID(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		if report != nil {
			logger.Error("Damage identifier updated but notifications failed", "error", err.Error())
			c.JSON(http.StatusOK, dto.ToReportResponse(report))
			return
		}
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

func (h *reportHandler) listHistory(c *gin.Context) {
	entries, err := h.reportService.ListHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": dto.ToHistoryEntryResponses(entries)})
}

func (h *reportHandler) listClosingPayments(c *gin.Context) {
	payments, err := h.reportService.ListClosingPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": dto.ToClosingPaymentResponses(payments)})
}
