package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/httperr"
	"github.com/itzlabs/clientdesk/internal/httpresp"
	"github.com/itzlabs/clientdesk/internal/middleware"
	"github.com/itzlabs/clientdesk/internal/reconcile"
	ucClient "github.com/itzlabs/clientdesk/internal/usecase/client"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	createUC    *ucClient.CreateClient
	updateUC    *ucClient.UpdateClient
	deleteUC    *ucClient.DeleteClient
	listUC      *ucClient.ListClients
	aggregateUC *ucClient.AggregateClients
	reconciler  *reconcile.Reconciler
	log         *slog.Logger
}

func NewClientHandler(
	createUC *ucClient.CreateClient,
	updateUC *ucClient.UpdateClient,
	deleteUC *ucClient.DeleteClient,
	listUC *ucClient.ListClients,
	aggregateUC *ucClient.AggregateClients,
	reconciler *reconcile.Reconciler,
	log *slog.Logger,
) *ClientHandler {
	return &ClientHandler{
		createUC:    createUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		listUC:      listUC,
		aggregateUC: aggregateUC,
		reconciler:  reconciler,
		log:         log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	BusinessName    string `json:"business_name"`
	BusinessAddress string `json:"business_address"`
	ContactNumber   string `json:"contact_number"`
	Description     string `json:"description"`
	MeetingSlot     string `json:"meeting_slot"`
}

type UpdateClientRequest struct {
	reconcile.Input

	// ExpectedUpdatedAt, when present, is the updated_at the edit form
	// was rendered from (RFC 3339). A stale value gets a 409.
	ExpectedUpdatedAt *string `json:"expected_updated_at"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	actorID := actorFromContext(c)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and email are required.")
		return
	}

	in := ucClient.CreateClientInput{
		Name:            req.Name,
		Email:           req.Email,
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		ContactNumber:   req.ContactNumber,
		Description:     req.Description,
	}
	if slot, ok := reconcile.NormalizeMeetingSlot(req.MeetingSlot); ok {
		in.MeetingSlot = &slot
	}

	created, err := h.createUC.Execute(c.Request.Context(), actorID, in)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	actorID := actorFromContext(c)

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed update payload.")
		return
	}

	payload, err := h.reconciler.BuildUpdate(c.Request.Context(), req.Input)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	var expected *time.Time
	if req.ExpectedUpdatedAt != nil && *req.ExpectedUpdatedAt != "" {
		t, err := time.Parse(time.RFC3339Nano, *req.ExpectedUpdatedAt)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "expected_updated_at must be RFC 3339.")
			return
		}
		expected = &t
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), actorID, id, payload, expected)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	actorID := actorFromContext(c)

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actorID, id); err != nil {
		httperr.From(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	var filter domain.ListFilter

	if raw := c.Query("status"); raw != "" {
		s := domain.Status(raw)
		if !s.Valid() {
			httperr.BadRequest(c, "invalid_status", "Unknown status filter.")
			return
		}
		filter.Status = &s
	}
	if c.Query("window") == "30d" {
		filter.MeetingWindow = true
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			filter.Limit = n
		}
	}

	clients, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// STATS
// ======================================================

func (h *ClientHandler) Stats(c *gin.Context) {
	agg, err := h.aggregateUC.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.OK(c, agg)
}

// ======================================================
// HELPERS
// ======================================================

func actorFromContext(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextAgentID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Client id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}
