package client

import (
	"context"

	"github.com/itzlabs/clientdesk/internal/audit"
	domain "github.com/itzlabs/clientdesk/internal/domain/client"
)

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{repo: repo, audit: audit}
}

// Execute removes the client. A missing id surfaces as NotFoundError so
// the UI can tell the caller a concurrent delete happened.
func (uc *DeleteClient) Execute(
	ctx context.Context,
	actorID *uint,
	id uint,
) error {

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AgentID:  actorID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})

	return nil
}
