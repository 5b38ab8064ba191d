package client

import (
	"time"

	"github.com/itzlabs/clientdesk/internal/errs"
	"github.com/itzlabs/clientdesk/internal/validators"
)

// ===============================
// Partial update payload
// ===============================

// Optional is a tri-state field for partial updates: absent (leave the
// column alone), null (explicitly clear it), or a value.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Present: true, Null: true}
}

// UpdatePayload is the canonical partial update consumed by the store.
// The reconciler is the only producer for form input; fields left
// non-present are never touched.
type UpdatePayload struct {
	Name            Optional[string]
	Email           Optional[string]
	BusinessName    Optional[string]
	BusinessAddress Optional[string]
	ContactNumber   Optional[string]
	Description     Optional[string]

	MeetingSlot Optional[time.Time]

	Status       Optional[Status]
	AgentID      Optional[uint]
	PackageName  Optional[string]
	PackagePrice Optional[float64]
	PhotoURL     Optional[string]
}

func (p UpdatePayload) Validate() error {
	if p.Name.Present && !p.Name.Null && p.Name.Value == "" {
		return errs.Validation("name", "must not be empty")
	}
	if p.Email.Present {
		if p.Email.Null || p.Email.Value == "" {
			return errs.Validation("email", "must not be empty")
		}
		if !validators.IsEmailValid(p.Email.Value) {
			return errs.Validation("email", "is not a valid address")
		}
	}
	if p.Status.Present && !p.Status.Value.Valid() {
		return errs.Validation("status", "is not a known status")
	}
	if p.PackagePrice.Present && !p.PackagePrice.Null && p.PackagePrice.Value < 0 {
		return errs.Validation("package_price", "must not be negative")
	}
	return nil
}

// Changes flattens the payload into column assignments for a single
// parameterized UPDATE. updated_at is always included.
func (p UpdatePayload) Changes(now time.Time) map[string]any {
	changes := map[string]any{"updated_at": now}

	setString := func(col string, f Optional[string]) {
		if !f.Present {
			return
		}
		if f.Null {
			changes[col] = ""
			return
		}
		changes[col] = f.Value
	}

	setString("name", p.Name)
	setString("email", p.Email)
	setString("business_name", p.BusinessName)
	setString("business_address", p.BusinessAddress)
	setString("contact_number", p.ContactNumber)
	setString("description", p.Description)
	setString("package_name", p.PackageName)
	setString("photo_url", p.PhotoURL)

	if p.MeetingSlot.Present {
		if p.MeetingSlot.Null {
			changes["meeting_slot"] = nil
		} else {
			changes["meeting_slot"] = p.MeetingSlot.Value
		}
	}
	if p.AgentID.Present {
		if p.AgentID.Null {
			changes["agent_id"] = nil
		} else {
			changes["agent_id"] = p.AgentID.Value
		}
	}
	if p.Status.Present {
		changes["status"] = string(p.Status.Value)
	}
	if p.PackagePrice.Present {
		if p.PackagePrice.Null {
			changes["package_price"] = 0.0
		} else {
			changes["package_price"] = p.PackagePrice.Value
		}
	}

	return changes
}
