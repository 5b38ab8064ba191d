package call

import (
	"context"

	"github.com/itzlabs/clientdesk/internal/models"
)

// Entry is a call row joined with the attributed agent's display name,
// so the UI can render history without a second round trip.
type Entry struct {
	models.ClientCall
	AgentName string `json:"agent_name"`
}

// Repository is append-only: entries are inserted once, then only read
// back newest-first.
type Repository interface {
	Insert(ctx context.Context, c *models.ClientCall) error
	GetEntry(ctx context.Context, id uint) (*Entry, error)
	ListForClient(ctx context.Context, clientID uint, offset, limit int) ([]Entry, error)
}
