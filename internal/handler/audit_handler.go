package handler

import (
	"net/http"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/service"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/pagination"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup, authn, adminOnly gin.HandlerFunc) {
	router.GET("/api/audit", authn, adminOnly, h.ListLogs)
}

// ListLogs returns the audit trail, newest first
// @Summary      List audit logs
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /api/audit [get]
func (h *AuditHandler) ListLogs(c *gin.Context) {
	params := pagination.Parse(c)

	logs, total, err := h.auditService.ListLogs(c.Request.Context(), params.Skip, int64(params.Limit))
	if err != nil {
		response.FromError(c, "list audit logs", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}))
}
