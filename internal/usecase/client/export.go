package client

import (
	"context"
	"strconv"

	domain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/reconcile"
)

// ExportHeader is the import column order prefixed with id and suffixed
// with created_at, matching what a later import expects to find.
var ExportHeader = []string{
	"id", "user_email", "name", "email", "business_name",
	"business_address", "contact_number", "description",
	"meeting_slot", "created_at",
}

type ExportClients struct {
	repo domain.Repository
}

func NewExportClients(repo domain.Repository) *ExportClients {
	return &ExportClients{repo: repo}
}

// Execute returns all clients newest-first as ordered CSV rows, header
// included.
func (uc *ExportClients) Execute(ctx context.Context) ([][]string, error) {
	clients, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(clients)+1)
	rows = append(rows, ExportHeader)

	for _, c := range clients {
		slot := ""
		if c.MeetingSlot != nil {
			slot = reconcile.FormatMeetingSlot(*c.MeetingSlot)
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(c.ID), 10),
			c.UserEmail,
			c.Name,
			c.Email,
			c.BusinessName,
			c.BusinessAddress,
			c.ContactNumber,
			c.Description,
			slot,
			reconcile.FormatMeetingSlot(c.CreatedAt),
		})
	}

	return rows, nil
}
