package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/itzlabs/clientdesk/internal/httperr"
	"github.com/itzlabs/clientdesk/internal/httpresp"
	"github.com/itzlabs/clientdesk/internal/models"
)

type AuditLogsHandler struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewAuditLogsHandler(db *gorm.DB, log *slog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var logs []models.AuditLog
	if err := h.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		h.log.Error("audit log list failed", "err", err)
		httperr.Internal(c, "storage_error", "Something went wrong. Please try again.")
		return
	}

	httpresp.List(c, logs)
}
