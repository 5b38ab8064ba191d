package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/itzlabs/clientdesk/internal/httperr"
	"github.com/itzlabs/clientdesk/internal/httpresp"
	ucCall "github.com/itzlabs/clientdesk/internal/usecase/call"
)

type CallHandler struct {
	recordUC  *ucCall.RecordCall
	historyUC *ucCall.CallHistory
	log       *slog.Logger
}

func NewCallHandler(
	recordUC *ucCall.RecordCall,
	historyUC *ucCall.CallHistory,
	log *slog.Logger,
) *CallHandler {
	return &CallHandler{recordUC: recordUC, historyUC: historyUC, log: log}
}

type RecordCallRequest struct {
	CallStatus   string `json:"call_status" binding:"required"`
	Notes        string `json:"notes"`
	FollowupDate string `json:"followup_date"`
}

// Record saves one call attempt. A call never mutates the client row.
func (h *CallHandler) Record(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var callerID uint
	if actor := actorFromContext(c); actor != nil {
		callerID = *actor
	}

	var req RecordCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "call_status is required.")
		return
	}

	entry, err := h.recordUC.Execute(c.Request.Context(), ucCall.RecordCallInput{
		ClientID:    id,
		CallerID:    callerID,
		CallStatus:  req.CallStatus,
		Notes:       req.Notes,
		FollowupRaw: req.FollowupDate,
	})
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *CallHandler) History(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.historyUC.Execute(c.Request.Context(), id, offset, limit)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.List(c, entries)
}
