package domain

import "fmt"

// Status is the closed set of task lifecycle states. The wire format is the
// small integer code the remote store persists.
type Status int

const (
	StatusPending   Status = 1
	StatusCompleted Status = 2
	StatusCancelled Status = 3
)

// Valid reports whether s is one of the known codes.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// ParseStatus converts a stored integer code into a Status.
func ParseStatus(code int) (Status, error) {
	s := Status(code)
	if !s.Valid() {
		return 0, WrapError(ErrCodeInvalid, "unknown status code", fmt.Errorf("code %d", code))
	}
	return s, nil
}

// CanTransitionTo is the single place transition policy lives: a task leaves
// pending for completed or cancelled and never moves again. The remote store
// itself imposes no such constraint; enforcement happens on the client side.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && (next == StatusCompleted || next == StatusCancelled)
}

// TransitionsFrom lists the states reachable from s, in the order the
// status editor offers them. Terminal states yield nil.
func TransitionsFrom(s Status) []Status {
	if s != StatusPending {
		return nil
	}
	return []Status{StatusCompleted, StatusCancelled}
}

// StatusPresentation is the one canonical status-to-presentation mapping
// shared by every surface that renders a task.
type StatusPresentation struct {
	Icon  string
	Color string
}

var statusPresentations = map[Status]StatusPresentation{
	StatusPending:   {Icon: "clock", Color: "#FFA000"},
	StatusCompleted: {Icon: "check-circle", Color: "#4CAF50"},
	StatusCancelled: {Icon: "close-circle", Color: "#F44336"},
}

// unknownPresentation covers codes outside the closed set, e.g. rows written
// by an older schema.
var unknownPresentation = StatusPresentation{Icon: "help-circle", Color: "#9E9E9E"}

// Presentation returns the icon and color for s.
func (s Status) Presentation() StatusPresentation {
	if p, ok := statusPresentations[s]; ok {
		return p
	}
	return unknownPresentation
}
