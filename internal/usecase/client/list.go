package client

import (
	"context"

	domain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/models"
)

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Client, error) {
	return uc.repo.List(ctx, f)
}
