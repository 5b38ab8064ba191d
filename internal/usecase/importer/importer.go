package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/itzlabs/clientdesk/internal/audit"
	domain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/models"
	"github.com/itzlabs/clientdesk/internal/reconcile"
	"github.com/itzlabs/clientdesk/internal/validators"
)

// Column order expected in each row.
const (
	colUserEmail = iota
	colName
	colEmail
	colBusinessName
	colBusinessAddress
	colContactNumber
	colDescription
	colMeetingSlot
	columnCount
)

// Field length caps applied before insertion. Overlong values are
// truncated, not rejected, to maximize successful ingestion.
const (
	maxNameLen        = 255
	maxBusinessLen    = 255
	maxAddressLen     = 512
	maxContactLen     = 64
	maxDescriptionLen = 2000
	maxSlotLen        = 255
)

type Options struct {
	// HasHeader declares whether the first row is a header. This is an
	// explicit caller contract; rows are never sniffed for header-like
	// words.
	HasHeader bool
}

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type Report struct {
	Inserted int        `json:"inserted"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors"`
}

type Importer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func New(repo domain.Repository, audit *audit.Dispatcher) *Importer {
	return &Importer{repo: repo, audit: audit}
}

// Execute ingests the rows sequentially inside one transaction. A bad
// row is reported and skipped, never aborting the batch: the
// transaction commits regardless of row-level errors. Row numbers in
// the report are 1-based positions in the input, header included.
func (i *Importer) Execute(
	ctx context.Context,
	actorID *uint,
	rows [][]string,
	opts Options,
) (*Report, error) {

	report := &Report{Errors: []RowError{}}

	err := i.repo.WithTx(ctx, func(tx domain.Repository) error {
		for n, row := range rows {
			rowNum := n + 1
			if opts.HasHeader && rowNum == 1 {
				continue
			}
			i.ingestRow(ctx, tx, rowNum, row, report)
		}
		return nil
	})
	if err != nil {
		// pipeline fault before/around the batch, not a row error
		return nil, err
	}

	i.audit.Dispatch(audit.Event{
		AgentID: actorID,
		Action:  "import_finished",
		Entity:  "client",
		Metadata: map[string]any{
			"inserted": report.Inserted,
			"skipped":  report.Skipped,
			"errors":   len(report.Errors),
		},
	})

	return report, nil
}

func (i *Importer) ingestRow(
	ctx context.Context,
	tx domain.Repository,
	rowNum int,
	row []string,
	report *Report,
) {
	// blank line
	if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
		report.Skipped++
		return
	}

	if len(row) < columnCount {
		report.Errors = append(report.Errors, RowError{
			Row:     rowNum,
			Message: fmt.Sprintf("not enough columns (found %d)", len(row)),
		})
		report.Skipped++
		return
	}

	userEmail := strings.TrimSpace(row[colUserEmail])
	name := truncate(strings.TrimSpace(row[colName]), maxNameLen)
	email := validators.NormalizeEmail(row[colEmail])

	if !validators.IsEmailValid(email) {
		report.Errors = append(report.Errors, RowError{
			Row:     rowNum,
			Message: fmt.Sprintf("invalid email %q", strings.TrimSpace(row[colEmail])),
		})
		report.Skipped++
		return
	}

	// a malformed submitter email is flagged but does not block the row
	if userEmail != "" && !validators.IsEmailValid(userEmail) {
		report.Errors = append(report.Errors, RowError{
			Row:     rowNum,
			Message: fmt.Sprintf("invalid user_email %q", userEmail),
		})
		userEmail = ""
	}

	c := &models.Client{
		UserEmail:       userEmail,
		Name:            name,
		Email:           email,
		BusinessName:    truncate(strings.TrimSpace(row[colBusinessName]), maxBusinessLen),
		BusinessAddress: truncate(strings.TrimSpace(row[colBusinessAddress]), maxAddressLen),
		ContactNumber:   truncate(strings.TrimSpace(row[colContactNumber]), maxContactLen),
		Description:     truncate(strings.TrimSpace(row[colDescription]), maxDescriptionLen),
		Status:          string(domain.InitialStatus()),
	}

	slotRaw := truncate(strings.TrimSpace(row[colMeetingSlot]), maxSlotLen)
	if slot, ok := reconcile.NormalizeMeetingSlot(slotRaw); ok {
		c.MeetingSlot = &slot
	}

	if err := tx.Create(ctx, c); err != nil {
		report.Errors = append(report.Errors, RowError{
			Row:     rowNum,
			Message: "insert failed",
		})
		report.Skipped++
		return
	}

	report.Inserted++
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// cut on a rune boundary
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
