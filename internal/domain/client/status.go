package client

// ===============================
// Client Status
// ===============================

type Status string

const (
	StatusPending          Status = "pending"
	StatusBooked           Status = "booked"
	StatusAppointmentFixed Status = "appointment_fixed"
	StatusPaid             Status = "paid"
	StatusCancelled        Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusBooked, StatusAppointmentFixed, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// CoerceStatus maps any out-of-enum input to pending. This is the form
// path's policy only; the store rejects an invalid status outright.
func CoerceStatus(raw string) Status {
	s := Status(raw)
	if !s.Valid() {
		return StatusPending
	}
	return s
}

func InitialStatus() Status {
	return StatusPending
}
