package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itzlabs/clientdesk/internal/config"
	clientdomain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/httperr"
	"github.com/itzlabs/clientdesk/internal/mail"
	"github.com/itzlabs/clientdesk/internal/reconcile"
)

type MailHandler struct {
	clients clientdomain.Repository
	mailer  mail.Mailer
	config  *config.Config
	log     *slog.Logger
}

func NewMailHandler(
	clients clientdomain.Repository,
	mailer mail.Mailer,
	cfg *config.Config,
	log *slog.Logger,
) *MailHandler {
	return &MailHandler{clients: clients, mailer: mailer, config: cfg, log: log}
}

type SendMailRequest struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// SendToClient substitutes {{name}}, {{email}} and {{meeting_slot}}
// into an admin-written body and mails the client.
func (h *MailHandler) SendToClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SendMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Subject and body are required.")
		return
	}

	client, err := h.clients.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	slot := ""
	if client.MeetingSlot != nil {
		slot = reconcile.FormatMeetingSlot(*client.MeetingSlot)
	}
	htmlBody, alt := mail.RenderTemplate(req.Body, map[string]string{
		"name":         client.Name,
		"email":        client.Email,
		"meeting_slot": slot,
	})

	toName := client.Name
	if toName == "" {
		toName = client.Email
	}

	if err := h.mailer.Send(h.config.MailFromName, client.Email, toName, req.Subject, htmlBody, alt); err != nil {
		h.log.Warn("client mail delivery failed", "client_id", id, "err", err)
		httperr.Write(c, http.StatusBadGateway, "mail_failed", "The mail could not be delivered.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": true})
}
