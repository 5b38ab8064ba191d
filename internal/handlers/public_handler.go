package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itzlabs/clientdesk/internal/config"
	"github.com/itzlabs/clientdesk/internal/httperr"
	"github.com/itzlabs/clientdesk/internal/mail"
	"github.com/itzlabs/clientdesk/internal/reconcile"
	ucClient "github.com/itzlabs/clientdesk/internal/usecase/client"
)

// PublicHandler takes unauthenticated booking submissions from the
// public form.
type PublicHandler struct {
	createUC *ucClient.CreateClient
	mailer   mail.Mailer
	config   *config.Config
	log      *slog.Logger
}

func NewPublicHandler(
	createUC *ucClient.CreateClient,
	mailer mail.Mailer,
	cfg *config.Config,
	log *slog.Logger,
) *PublicHandler {
	return &PublicHandler{createUC: createUC, mailer: mailer, config: cfg, log: log}
}

type CreateBookingRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	BusinessName    string `json:"business_name"`
	BusinessAddress string `json:"business_address"`
	ContactNumber   string `json:"contact_number"`
	Description     string `json:"description"`
	MeetingSlot     string `json:"meeting_slot" binding:"required"`

	// UserEmail identifies the referring partner who filled the form on
	// the client's behalf, when there is one.
	UserEmail string `json:"user_email"`
}

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and meeting slot are required.")
		return
	}

	in := ucClient.CreateClientInput{
		UserEmail:       req.UserEmail,
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

	created, err := h.createUC.Execute(c.Request.Context(), nil, in)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	// notification mails are best effort; the booking is already saved
	h.notifyAdmin(created.ID, req)
	h.acknowledgeClient(req)

	c.JSON(http.StatusCreated, gin.H{"id": created.ID, "status": created.Status})
}

func (h *PublicHandler) notifyAdmin(clientID uint, req CreateBookingRequest) {
	body := fmt.Sprintf(
		"New booking request #%d\n\nName: {{name}}\nEmail: {{email}}\nBusiness: %s\nContact: %s\nMeeting slot: %s\n\n%s",
		clientID, req.BusinessName, req.ContactNumber, req.MeetingSlot, req.Description,
	)
	htmlBody, alt := mail.RenderTemplate(body, map[string]string{
		"name":  req.Name,
		"email": req.Email,
	})

	subject := "[Booking] New submission from " + req.Name
	if err := h.mailer.Send(h.config.MailFromName, h.config.AdminEmail, h.config.AdminName, subject, htmlBody, alt); err != nil {
		h.log.Warn("admin notification failed", "client_id", clientID, "err", err)
	}
}

func (h *PublicHandler) acknowledgeClient(req CreateBookingRequest) {
	body := "Hi {{name}},\n\nThanks, we received your booking request" +
		" and will contact you shortly to confirm.\n\nRegards,\n" + h.config.MailFromName
	htmlBody, alt := mail.RenderTemplate(body, map[string]string{"name": req.Name})

	if err := h.mailer.Send(h.config.MailFromName, req.Email, req.Name, "We received your booking request", htmlBody, alt); err != nil {
		h.log.Warn("client acknowledgement failed", "to", req.Email, "err", err)
	}
}
