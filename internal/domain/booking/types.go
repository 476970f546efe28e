package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Blocks reports whether a booking in this status occupies its slot.
// Only confirmed bookings conflict with new reservations.
func (s Status) Blocks() bool {
	return s == StatusConfirmed
}
