package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
)

type statusHandler struct {
	statusService portssvc.StatusSvcFacade
}

// registerStatusRoutes registers the read-only status registry routes.
func registerStatusRoutes(rg *gin.RouterGroup, statusService portssvc.StatusSvcFacade) {
	h := &statusHandler{statusService: statusService}
	rg.GET("/statuses", h.listStatuses)
}

func (h *statusHandler) listStatuses(c *gin.Context) {
	statuses, err := h.statusService.ListStatuses(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statuses": statuses})
}
