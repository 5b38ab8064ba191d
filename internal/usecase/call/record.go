package call

import (
	"context"
	"strings"

	"github.com/itzlabs/clientdesk/internal/audit"
	agentdomain "github.com/itzlabs/clientdesk/internal/domain/agent"
	domain "github.com/itzlabs/clientdesk/internal/domain/call"
	clientdomain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/errs"
	"github.com/itzlabs/clientdesk/internal/models"
	"github.com/itzlabs/clientdesk/internal/reconcile"
)

// ======================================================
// INPUT
// ======================================================

type RecordCallInput struct {
	ClientID uint

	// CallerID is the acting session identity. It attributes the call
	// only if it resolves to a known agent; otherwise the entry is
	// recorded unattributed rather than rejected.
	CallerID uint

	CallStatus string
	Notes      string

	// FollowupRaw is a loose date-time string; unparseable input means
	// no followup, same leniency as the meeting slot.
	FollowupRaw string
}

// ======================================================
// USE CASE
// ======================================================

type RecordCall struct {
	calls   domain.Repository
	clients clientdomain.Repository
	agents  agentdomain.Directory
	audit   *audit.Dispatcher
}

func NewRecordCall(
	calls domain.Repository,
	clients clientdomain.Repository,
	agents agentdomain.Directory,
	audit *audit.Dispatcher,
) *RecordCall {
	return &RecordCall{
		calls:   calls,
		clients: clients,
		agents:  agents,
		audit:   audit,
	}
}

func (uc *RecordCall) Execute(
	ctx context.Context,
	in RecordCallInput,
) (*domain.Entry, error) {

	status := domain.Status(strings.TrimSpace(in.CallStatus))
	if !status.Valid() {
		return nil, errs.Validation("call_status", "is not a known call status")
	}

	// the insert is rejected up front when the client is gone; calls
	// must never dangle
	if _, err := uc.clients.GetByID(ctx, in.ClientID); err != nil {
		return nil, err
	}

	var agentID *uint
	if in.CallerID > 0 {
		ok, err := uc.agents.Exists(ctx, in.CallerID)
		if err != nil {
			return nil, err
		}
		if ok {
			id := in.CallerID
			agentID = &id
		}
	}

	entry := &models.ClientCall{
		ClientID:   in.ClientID,
		AgentID:    agentID,
		CallStatus: string(status),
		Notes:      strings.TrimSpace(in.Notes),
	}
	if followup, ok := reconcile.NormalizeMeetingSlot(in.FollowupRaw); ok {
		entry.FollowupDate = &followup
	}

	if err := uc.calls.Insert(ctx, entry); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AgentID:  agentID,
		Action:   "call_recorded",
		Entity:   "call",
		EntityID: &entry.ID,
		Metadata: map[string]any{"client_id": in.ClientID, "call_status": entry.CallStatus},
	})

	return uc.calls.GetEntry(ctx, entry.ID)
}
