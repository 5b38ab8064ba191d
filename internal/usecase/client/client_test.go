package client

import (
	"context"
	"testing"
	"time"

	"github.com/itzlabs/clientdesk/internal/audit"
	domain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/errs"
)

func TestCreateClient(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateClient(repo, audit.Nop())

	c, err := uc.Execute(context.Background(), nil, CreateClientInput{
		Name:  "Jane Doe",
		Email: " Jane@X.com ",
	})
	if err != nil {
		t.Fatal(err)
	}

	if c.ID == 0 {
		t.Error("expected an assigned id")
	}
	if c.Status != string(domain.StatusPending) {
		t.Errorf("status = %q, want pending", c.Status)
	}
	if c.PackagePrice != 0 {
		t.Errorf("package_price = %v, want 0", c.PackagePrice)
	}
	if c.Email != "jane@x.com" {
		t.Errorf("email = %q, want normalized jane@x.com", c.Email)
	}
	if !c.CreatedAt.Equal(c.UpdatedAt) {
		t.Errorf("created_at %v != updated_at %v on a fresh record",
			c.CreatedAt, c.UpdatedAt)
	}
}

func TestCreateClient_Rejections(t *testing.T) {
	uc := NewCreateClient(newFakeRepo(), audit.Nop())

	if _, err := uc.Execute(context.Background(), nil, CreateClientInput{
		Email: "jane@x.com",
	}); err == nil {
		t.Error("missing name must be rejected")
	}

	_, err := uc.Execute(context.Background(), nil, CreateClientInput{
		Name:  "Jane Doe",
		Email: "not-an-email",
	})
	if err == nil {
		t.Fatal("invalid email must be rejected")
	}
	if ve, ok := errs.AsValidation(err); !ok || ve.Field != "email" {
		t.Errorf("expected an email validation error, got %v", err)
	}
}

func TestUpdateClient_EmptyPayloadBumpsOnlyUpdatedAt(t *testing.T) {
	repo := newFakeRepo()
	created, err := NewCreateClient(repo, audit.Nop()).
		Execute(context.Background(), nil, CreateClientInput{
			Name: "Jane Doe", Email: "jane@x.com", BusinessName: "Doe & Co",
		})
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(2 * time.Millisecond)

	updated, err := NewUpdateClient(repo, audit.Nop()).
		Execute(context.Background(), nil, created.ID, domain.UpdatePayload{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("updated_at must be bumped even by an empty payload")
	}
	if updated.Name != created.Name || updated.Email != created.Email ||
		updated.BusinessName != created.BusinessName ||
		updated.Status != created.Status {
		t.Error("an empty payload must leave every other field alone")
	}
}

func TestUpdateClient_NullableFields(t *testing.T) {
	repo := newFakeRepo()
	slot := time.Date(2026, 9, 10, 14, 30, 0, 0, time.Local)
	created, err := NewCreateClient(repo, audit.Nop()).
		Execute(context.Background(), nil, CreateClientInput{
			Name: "Jane Doe", Email: "jane@x.com", MeetingSlot: &slot,
		})
	if err != nil {
		t.Fatal(err)
	}

	uc := NewUpdateClient(repo, audit.Nop())

	updated, err := uc.Execute(context.Background(), nil, created.ID, domain.UpdatePayload{
		AgentID: domain.Some(uint(4)),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if updated.AgentID == nil || *updated.AgentID != 4 {
		t.Fatalf("agent_id = %v, want 4", updated.AgentID)
	}
	if updated.MeetingSlot == nil {
		t.Fatal("meeting_slot must survive an unrelated update")
	}

	updated, err = uc.Execute(context.Background(), nil, created.ID, domain.UpdatePayload{
		MeetingSlot: domain.Null[time.Time](),
		AgentID:     domain.Null[uint](),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if updated.MeetingSlot != nil || updated.AgentID != nil {
		t.Error("explicit nulls must clear meeting_slot and agent_id")
	}
}

func TestUpdateClient_StalePrecondition(t *testing.T) {
	repo := newFakeRepo()
	created, err := NewCreateClient(repo, audit.Nop()).
		Execute(context.Background(), nil, CreateClientInput{
			Name: "Jane Doe", Email: "jane@x.com",
		})
	if err != nil {
		t.Fatal(err)
	}

	uc := NewUpdateClient(repo, audit.Nop())

	stale := created.UpdatedAt.Add(-time.Hour)
	_, err = uc.Execute(context.Background(), nil, created.ID, domain.UpdatePayload{
		Name: domain.Some("Janet Doe"),
	}, &stale)
	if !errs.IsConflict(err) {
		t.Fatalf("stale precondition should conflict, got %v", err)
	}

	fresh := created.UpdatedAt
	if _, err := uc.Execute(context.Background(), nil, created.ID, domain.UpdatePayload{
		Name: domain.Some("Janet Doe"),
	}, &fresh); err != nil {
		t.Fatalf("matching precondition should pass, got %v", err)
	}
}

func TestUpdateClient_ValidationBeforeStore(t *testing.T) {
	uc := NewUpdateClient(newFakeRepo(), audit.Nop())

	_, err := uc.Execute(context.Background(), nil, 1, domain.UpdatePayload{
		PackagePrice: domain.Some(-5.0),
	}, nil)
	if _, ok := errs.AsValidation(err); !ok {
		t.Errorf("negative price should fail validation, got %v", err)
	}

	_, err = uc.Execute(context.Background(), nil, 1, domain.UpdatePayload{
		Status: domain.Some(domain.Status("typo")),
	}, nil)
	if _, ok := errs.AsValidation(err); !ok {
		t.Errorf("out-of-enum status should fail validation at the store boundary, got %v", err)
	}
}

func TestDeleteClient_Missing(t *testing.T) {
	uc := NewDeleteClient(newFakeRepo(), audit.Nop())

	err := uc.Execute(context.Background(), nil, 42)
	if !errs.IsNotFound(err) {
		t.Fatalf("deleting a missing client should be NotFound, got %v", err)
	}
}

func TestAggregate_PaidLifecycle(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateClient(repo, audit.Nop())
	update := NewUpdateClient(repo, audit.Nop())
	aggregate := NewAggregateClients(repo)

	created, err := create.Execute(context.Background(), nil, CreateClientInput{
		Name: "Jane Doe", Email: "jane@x.com",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := update.Execute(context.Background(), nil, created.ID, domain.UpdatePayload{
		Status:       domain.Some(domain.StatusPaid),
		PackagePrice: domain.Some(2500.0),
	}, nil); err != nil {
		t.Fatal(err)
	}

	agg, err := aggregate.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if agg.TotalClients != 1 {
		t.Errorf("total_clients = %d, want 1", agg.TotalClients)
	}
	if agg.PaidClients != 1 {
		t.Errorf("paid_clients = %d, want 1", agg.PaidClients)
	}
	if agg.RevenuePaid != 2500.00 {
		t.Errorf("revenue_paid = %v, want 2500.00", agg.RevenuePaid)
	}
	if agg.PendingClients != 0 {
		t.Errorf("pending_clients = %d, want 0", agg.PendingClients)
	}
}

func TestListClients_StatusFilter(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateClient(repo, audit.Nop())
	update := NewUpdateClient(repo, audit.Nop())

	for _, name := range []string{"A", "B", "C"} {
		if _, err := create.Execute(context.Background(), nil, CreateClientInput{
			Name: name, Email: name + "@x.com",
		}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := update.Execute(context.Background(), nil, 2, domain.UpdatePayload{
		Status: domain.Some(domain.StatusPaid),
	}, nil); err != nil {
		t.Fatal(err)
	}

	paid := domain.StatusPaid
	got, err := NewListClients(repo).Execute(context.Background(), domain.ListFilter{Status: &paid})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("paid filter returned %v, want exactly client 2", got)
	}
}

func TestExportClients_OrderedRows(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateClient(repo, audit.Nop())

	slot := time.Date(2026, 9, 10, 14, 30, 0, 0, time.Local)
	if _, err := create.Execute(context.Background(), nil, CreateClientInput{
		UserEmail: "owner@x.com", Name: "Jane Doe", Email: "jane@x.com",
		BusinessName: "Doe & Co", MeetingSlot: &slot,
	}); err != nil {
		t.Fatal(err)
	}

	rows, err := NewExportClients(repo).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	for i, col := range ExportHeader {
		if rows[0][i] != col {
			t.Fatalf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	row := rows[1]
	if row[0] != "1" || row[1] != "owner@x.com" || row[2] != "Jane Doe" ||
		row[3] != "jane@x.com" || row[4] != "Doe & Co" {
		t.Errorf("unexpected row layout: %v", row)
	}
	if row[8] != "2026-09-10 14:30:00" {
		t.Errorf("meeting_slot column = %q, want 2026-09-10 14:30:00", row[8])
	}
}
