package client

import (
	"context"

	domain "github.com/itzlabs/clientdesk/internal/domain/client"
)

type AggregateClients struct {
	repo domain.Repository
}

func NewAggregateClients(repo domain.Repository) *AggregateClients {
	return &AggregateClients{repo: repo}
}

// Execute recomputes the dashboard snapshot from the table on every
// call. There is no cached counter to fall out of sync.
func (uc *AggregateClients) Execute(ctx context.Context) (*domain.Aggregate, error) {
	return uc.repo.Aggregate(ctx)
}
