package call

import (
	"context"

	domain "github.com/itzlabs/clientdesk/internal/domain/call"
	"github.com/itzlabs/clientdesk/internal/errs"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

type CallHistory struct {
	calls domain.Repository
}

func NewCallHistory(calls domain.Repository) *CallHistory {
	return &CallHistory{calls: calls}
}

// Execute returns one page of a client's calls, newest first. A client
// with no calls yields an empty page, not an error.
func (uc *CallHistory) Execute(
	ctx context.Context,
	clientID uint,
	offset int,
	limit int,
) ([]domain.Entry, error) {

	if clientID == 0 {
		return nil, errs.Validation("client_id", "is required")
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	return uc.calls.ListForClient(ctx, clientID, offset, limit)
}
