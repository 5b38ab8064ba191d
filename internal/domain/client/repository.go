package client

import (
	"context"
	"time"

	"github.com/itzlabs/clientdesk/internal/models"
)

const (
	// DefaultListLimit bounds list responses the same way the dashboard
	// bounds its table.
	DefaultListLimit = 1000

	// MeetingWindowDays is the "recent meetings" window used by filters
	// and the aggregate snapshot.
	MeetingWindowDays = 30
)

type ListFilter struct {
	Status        *Status
	MeetingWindow bool // meeting_slot within the last MeetingWindowDays
	Limit         int  // 0 means DefaultListLimit
}

// Aggregate is recomputed from the table on every call; nothing here is
// cached.
type Aggregate struct {
	TotalClients   int64   `json:"total_clients"`
	PaidClients    int64   `json:"paid_clients"`
	RevenuePaid    float64 `json:"revenue_paid"`
	PendingClients int64   `json:"pending_clients"`
	Meetings30d    int64   `json:"meetings_30d"`
}

type Repository interface {
	Create(ctx context.Context, c *models.Client) error

	GetByID(ctx context.Context, id uint) (*models.Client, error)

	// Update applies the payload through one parameterized path.
	// expected, when non-nil, is an optimistic precondition on
	// updated_at; a mismatch yields a ConflictError.
	Update(ctx context.Context, id uint, p UpdatePayload, expected *time.Time) (*models.Client, error)

	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, f ListFilter) ([]models.Client, error)

	// ListAll returns every client newest-first, for export.
	ListAll(ctx context.Context) ([]models.Client, error)

	Aggregate(ctx context.Context) (*Aggregate, error)

	// WithTx runs fn against a repository bound to one transaction.
	// The transaction commits when fn returns nil.
	WithTx(ctx context.Context, fn func(Repository) error) error
}
