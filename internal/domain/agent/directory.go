package agent

import (
	"context"

	"github.com/itzlabs/clientdesk/internal/models"
)

// Directory is the read-mostly agent identity collaborator: assignment
// dropdowns, call attribution and login lookups. The CRM core never
// writes agents through it.
type Directory interface {
	List(ctx context.Context) ([]models.Agent, error)
	Exists(ctx context.Context, id uint) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.Agent, error)
	GetByEmail(ctx context.Context, email string) (*models.Agent, error)
}
