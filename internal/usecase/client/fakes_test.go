package client

import (
	"context"
	"sort"
	"time"

	domain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/errs"
	"github.com/itzlabs/clientdesk/internal/models"
)

// fakeRepo is an in-memory domain.Repository with the same observable
// semantics as the gorm store: Create stamps created_at == updated_at,
// Update goes through the payload's Changes map, and a stale
// precondition is a ConflictError.
type fakeRepo struct {
	nextID  uint
	clients map[uint]*models.Client
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{clients: map[uint]*models.Client{}}
}

func (r *fakeRepo) Create(ctx context.Context, c *models.Client) error {
	r.nextID++
	c.ID = r.nextID
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, errs.NotFound("client", id)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) Update(ctx context.Context, id uint, p domain.UpdatePayload, expected *time.Time) (*models.Client, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	c, ok := r.clients[id]
	if !ok {
		return nil, errs.NotFound("client", id)
	}
	if expected != nil && !expected.Equal(c.UpdatedAt) {
		return nil, errs.Conflict("client", id)
	}

	for col, v := range p.Changes(time.Now()) {
		switch col {
		case "updated_at":
			c.UpdatedAt = v.(time.Time)
		case "name":
			c.Name = v.(string)
		case "email":
			c.Email = v.(string)
		case "business_name":
			c.BusinessName = v.(string)
		case "business_address":
			c.BusinessAddress = v.(string)
		case "contact_number":
			c.ContactNumber = v.(string)
		case "description":
			c.Description = v.(string)
		case "package_name":
			c.PackageName = v.(string)
		case "photo_url":
			c.PhotoURL = v.(string)
		case "status":
			c.Status = v.(string)
		case "package_price":
			c.PackagePrice = v.(float64)
		case "meeting_slot":
			if v == nil {
				c.MeetingSlot = nil
			} else {
				t := v.(time.Time)
				c.MeetingSlot = &t
			}
		case "agent_id":
			if v == nil {
				c.AgentID = nil
			} else {
				a := v.(uint)
				c.AgentID = &a
			}
		}
	}

	cp := *c
	return &cp, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.clients[id]; !ok {
		return errs.NotFound("client", id)
	}
	delete(r.clients, id)
	return nil
}

func (r *fakeRepo) all() []models.Client {
	out := make([]models.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *fakeRepo) List(ctx context.Context, f domain.ListFilter) ([]models.Client, error) {
	limit := f.Limit
	if limit <= 0 || limit > domain.DefaultListLimit {
		limit = domain.DefaultListLimit
	}
	since := time.Now().AddDate(0, 0, -domain.MeetingWindowDays)

	var out []models.Client
	for _, c := range r.all() {
		if f.Status != nil && c.Status != string(*f.Status) {
			continue
		}
		if f.MeetingWindow && (c.MeetingSlot == nil || c.MeetingSlot.Before(since)) {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]models.Client, error) {
	return r.all(), nil
}

func (r *fakeRepo) Aggregate(ctx context.Context) (*domain.Aggregate, error) {
	agg := &domain.Aggregate{}
	since := time.Now().AddDate(0, 0, -domain.MeetingWindowDays)
	for _, c := range r.clients {
		agg.TotalClients++
		switch c.Status {
		case string(domain.StatusPaid):
			agg.PaidClients++
			agg.RevenuePaid += c.PackagePrice
		case string(domain.StatusPending):
			agg.PendingClients++
		}
		if c.MeetingSlot != nil && !c.MeetingSlot.Before(since) {
			agg.Meetings30d++
		}
	}
	return agg, nil
}

func (r *fakeRepo) WithTx(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(r)
}

var _ domain.Repository = (*fakeRepo)(nil)
