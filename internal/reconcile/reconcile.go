package reconcile

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/itzlabs/clientdesk/internal/domain/agent"
	"github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/errs"
)

// Package reconcile turns loose form strings into the canonical partial
// update payload. Policy, matching the dashboard it replaces: malformed
// meeting slots and prices degrade to null / 0.00 instead of blocking
// the whole edit, and an unknown status falls back to pending. The one
// place it is stricter than its predecessor: an agent assignment must
// reference an agent that actually exists.

// Input carries raw field values from a form or JSON body. A nil field
// means "not part of this update"; an empty string means "explicitly
// cleared" for the nullable fields (meeting slot, agent).
type Input struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	BusinessName    *string `json:"business_name"`
	BusinessAddress *string `json:"business_address"`
	ContactNumber   *string `json:"contact_number"`
	Notes           *string `json:"notes"`

	MeetingSlot *string `json:"meeting_slot"`

	Status       *string `json:"status"`
	AgentID      *string `json:"agent_id"`
	PackageName  *string `json:"package_name"`
	PackagePrice *string `json:"package_price"`
	PhotoURL     *string `json:"photo_url"`
}

type Reconciler struct {
	agents agent.Directory
}

func New(agents agent.Directory) *Reconciler {
	return &Reconciler{agents: agents}
}

var slotLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// NormalizeMeetingSlot parses a loose date-time string. Anything it
// cannot parse is "no slot", not an error.
func NormalizeMeetingSlot(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range slotLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatMeetingSlot renders a slot the way it is normalized, so
// normalize(format(t)) == t.
func FormatMeetingSlot(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

var priceStrip = strings.NewReplacer(",", "", "₹", "", "$", "", " ", "")

// NormalizePrice strips thousands separators and currency symbols and
// parses the rest as a decimal. Unparseable input is 0.00.
func NormalizePrice(raw string) float64 {
	raw = priceStrip.Replace(strings.TrimSpace(raw))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// BuildUpdate produces the canonical payload for the store. Only fields
// present in the input appear in the payload.
func (r *Reconciler) BuildUpdate(ctx context.Context, in Input) (client.UpdatePayload, error) {
	var p client.UpdatePayload

	setString := func(dst *client.Optional[string], src *string) {
		if src != nil {
			*dst = client.Some(strings.TrimSpace(*src))
		}
	}

	setString(&p.Name, in.Name)
	setString(&p.Email, in.Email)
	setString(&p.BusinessName, in.BusinessName)
	setString(&p.BusinessAddress, in.BusinessAddress)
	setString(&p.ContactNumber, in.ContactNumber)
	setString(&p.Description, in.Notes)
	setString(&p.PackageName, in.PackageName)
	setString(&p.PhotoURL, in.PhotoURL)

	if in.Status != nil {
		p.Status = client.Some(client.CoerceStatus(strings.TrimSpace(*in.Status)))
	}

	if in.PackagePrice != nil {
		p.PackagePrice = client.Some(NormalizePrice(*in.PackagePrice))
	}

	if in.MeetingSlot != nil {
		if slot, ok := NormalizeMeetingSlot(*in.MeetingSlot); ok {
			p.MeetingSlot = client.Some(slot)
		} else {
			p.MeetingSlot = client.Null[time.Time]()
		}
	}

	if in.AgentID != nil {
		raw := strings.TrimSpace(*in.AgentID)
		if raw == "" {
			p.AgentID = client.Null[uint]()
		} else {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || id == 0 {
				return client.UpdatePayload{}, errs.Validation("agent_id", "must be a numeric agent id")
			}
			ok, err := r.agents.Exists(ctx, uint(id))
			if err != nil {
				return client.UpdatePayload{}, err
			}
			if !ok {
				return client.UpdatePayload{}, errs.Validation("agent_id", "does not reference a known agent")
			}
			p.AgentID = client.Some(uint(id))
		}
	}

	return p, nil
}
