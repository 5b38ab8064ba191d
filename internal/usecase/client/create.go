package client

import (
	"context"
	"time"

	"github.com/itzlabs/clientdesk/internal/audit"
	domain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/errs"
	"github.com/itzlabs/clientdesk/internal/models"
	"github.com/itzlabs/clientdesk/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateClientInput struct {
	UserEmail string

	Name            string
	Email           string
	BusinessName    string
	BusinessAddress string
	ContactNumber   string
	Description     string

	// MeetingSlot must already be normalized; nil means no slot yet.
	MeetingSlot *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{repo: repo, audit: audit}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	actorID *uint,
	in CreateClientInput,
) (*models.Client, error) {

	if in.Name == "" {
		return nil, errs.Validation("name", "is required")
	}

	email := validators.NormalizeEmail(in.Email)
	if !validators.IsEmailValid(email) {
		return nil, errs.Validation("email", "is not a valid address")
	}

	c := &models.Client{
		UserEmail:       in.UserEmail,
		Name:            in.Name,
		Email:           email,
		BusinessName:    in.BusinessName,
		BusinessAddress: in.BusinessAddress,
		ContactNumber:   in.ContactNumber,
		Description:     in.Description,
		MeetingSlot:     in.MeetingSlot,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AgentID:  actorID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &c.ID,
	})

	return c, nil
}
