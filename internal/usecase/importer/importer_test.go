package importer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/itzlabs/clientdesk/internal/audit"
	domain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/models"
)

// memStore implements domain.Repository in memory with the same timing
// semantics as the gorm store: Create stamps created_at and updated_at
// with the same instant.
type memStore struct {
	nextID  uint
	clients []*models.Client
}

func newMemStore() *memStore { return &memStore{} }

func (s *memStore) Create(ctx context.Context, c *models.Client) error {
	s.nextID++
	c.ID = s.nextID
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.clients = append(s.clients, c)
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	panic("not used")
}

func (s *memStore) Update(ctx context.Context, id uint, p domain.UpdatePayload, expected *time.Time) (*models.Client, error) {
	panic("not used")
}

func (s *memStore) Delete(ctx context.Context, id uint) error { panic("not used") }

func (s *memStore) List(ctx context.Context, f domain.ListFilter) ([]models.Client, error) {
	panic("not used")
}

func (s *memStore) ListAll(ctx context.Context) ([]models.Client, error) { panic("not used") }

func (s *memStore) Aggregate(ctx context.Context) (*domain.Aggregate, error) { panic("not used") }

func (s *memStore) WithTx(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(s)
}

func row(userEmail, name, email, slot string) []string {
	return []string{userEmail, name, email, "Biz", "1 Main St", "555-0100", "notes", slot}
}

func TestExecute_PartialSuccessReport(t *testing.T) {
	store := newMemStore()
	imp := New(store, audit.Nop())

	rows := [][]string{
		row("owner@x.com", "Client 1", "c1@x.com", ""),
		row("owner@x.com", "Client 2", "c2@x.com", "2025-09-10 14:30"),
		row("owner@x.com", "Client 3", "not-an-email", ""),
		row("owner@x.com", "Client 4", "c4@x.com", ""),
		row("owner@x.com", "Client 5", "c5@x.com", ""),
		row("owner@x.com", "Client 6", "c6@x.com", ""),
		{"owner@x.com", "Client 7", "c7@x.com"}, // too few columns
		row("owner@x.com", "Client 8", "c8@x.com", ""),
		row("owner@x.com", "Client 9", "c9@x.com", ""),
		row("owner@x.com", "Client 10", "c10@x.com", ""),
	}

	report, err := imp.Execute(context.Background(), nil, rows, Options{HasHeader: false})
	if err != nil {
		t.Fatal(err)
	}

	if report.Inserted != 8 {
		t.Errorf("Inserted = %d, want 8", report.Inserted)
	}
	if report.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", report.Skipped)
	}
	if len(report.Errors) != 2 {
		t.Fatalf("Errors = %d, want 2", len(report.Errors))
	}
	if report.Errors[0].Row != 3 || report.Errors[1].Row != 7 {
		t.Errorf("error rows = %d, %d, want 3, 7",
			report.Errors[0].Row, report.Errors[1].Row)
	}
	if len(store.clients) != 8 {
		t.Errorf("store holds %d rows, want 8", len(store.clients))
	}
}

func TestExecute_HeaderRowSkipped(t *testing.T) {
	store := newMemStore()
	imp := New(store, audit.Nop())

	rows := [][]string{
		{"user_email", "name", "email", "business_name", "business_address", "contact_number", "description", "meeting_slot"},
		row("", "Client 1", "c1@x.com", ""),
	}

	report, err := imp.Execute(context.Background(), nil, rows, Options{HasHeader: true})
	if err != nil {
		t.Fatal(err)
	}

	if report.Inserted != 1 {
		t.Errorf("Inserted = %d, want 1", report.Inserted)
	}
	if len(report.Errors) != 0 {
		t.Errorf("header row must not produce errors, got %v", report.Errors)
	}

	// when the caller declares no header, the same first row is data and
	// fails email validation
	store2 := newMemStore()
	imp2 := New(store2, audit.Nop())
	report, err = imp2.Execute(context.Background(), nil, rows, Options{HasHeader: false})
	if err != nil {
		t.Fatal(err)
	}
	if report.Inserted != 1 || report.Skipped != 1 || len(report.Errors) != 1 {
		t.Errorf("unexpected report without header contract: %+v", report)
	}
	if report.Errors[0].Row != 1 {
		t.Errorf("error row = %d, want 1", report.Errors[0].Row)
	}
}

func TestExecute_RowShaping(t *testing.T) {
	store := newMemStore()
	imp := New(store, audit.Nop())

	longName := strings.Repeat("n", 300)
	rows := [][]string{
		{""}, // blank line
		row("not-an-email", longName, "c1@x.com", "2025-09-10 14:30"),
		row("", "Client 2", "c2@x.com", "whenever works"),
	}

	report, err := imp.Execute(context.Background(), nil, rows, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if report.Inserted != 2 || report.Skipped != 1 {
		t.Fatalf("report = %+v, want 2 inserted / 1 skipped", report)
	}

	// malformed submitter email is flagged but the row still lands,
	// with provenance blanked
	if len(report.Errors) != 1 || report.Errors[0].Row != 2 {
		t.Fatalf("expected one user_email error for row 2, got %v", report.Errors)
	}

	first := store.clients[0]
	if first.UserEmail != "" {
		t.Errorf("user_email = %q, want blank after flagging", first.UserEmail)
	}
	if len(first.Name) != 255 {
		t.Errorf("name length = %d, want capped at 255", len(first.Name))
	}
	if first.MeetingSlot == nil {
		t.Error("parseable slot should be stored")
	}
	if first.Status != "pending" {
		t.Errorf("status = %q, want pending", first.Status)
	}

	second := store.clients[1]
	if second.MeetingSlot != nil {
		t.Error("unparseable slot should be stored as null")
	}
}
