package client

import (
	"context"
	"time"

	"github.com/itzlabs/clientdesk/internal/audit"
	domain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/models"
)

type UpdateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{repo: repo, audit: audit}
}

// Execute applies a partial update. expected, when set, is the
// updated_at the caller's form was rendered from; a stale value yields
// a ConflictError instead of clobbering a concurrent edit.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	actorID *uint,
	id uint,
	p domain.UpdatePayload,
	expected *time.Time,
) (*models.Client, error) {

	if err := p.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, id, p, expected)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AgentID:  actorID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &updated.ID,
		Metadata: map[string]any{"status": updated.Status},
	})

	return updated, nil
}
