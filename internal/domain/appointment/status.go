package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions lists every legal move; anything missing is rejected.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// OccupyingStatuses are the statuses that hold a slot.
func OccupyingStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

// CountedStatuses are the statuses that consume plan quota.
func CountedStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed), string(StatusCompleted)}
}

func (s Status) IsOccupying() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidTransitionError{From: from, To: to}
}

func InitialStatus() Status {
	return StatusPending
}
