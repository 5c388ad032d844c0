package handlers

import (
	"net/http"
	"strconv"

	"github.com/ibn-network/ccm-backend/pkg/services"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	AuditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{AuditService: auditService}
}

// List godoc
// @Summary  List audit log entries
// @Tags     audit
// @Produce  json
// @Param    action query string false "action filter"
// @Param    resourceType query string false "resource type filter"
// @Param    resourceId query string false "resource id filter"
// @Success  200 {object} map[string]interface{}
// @Router   /audit-logs [get]
func (h *AuditHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	logs, err := h.AuditService.ListAuditLogs(
		c.Query("action"),
		c.Query("resourceType"),
		c.Query("resourceId"),
		skip,
		limit,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"audit_logs": logs, "total": len(logs)})
}
