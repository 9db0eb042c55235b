package appointment

import (
	"fmt"
	"strings"
)

// Status is the lifecycle tag of an appointment. Any status may move to any
// other status on explicit user command; there is no terminal state.
type Status string

const (
	// Scheduled is the initial status, assigned at creation.
	Scheduled Status = "scheduled"
	// Completed marks a kept appointment.
	Completed Status = "completed"
	// Cancelled marks a called-off appointment. The record stays until the
	// operator deletes it.
	Cancelled Status = "cancelled"
)

// AllStatuses returns the supported statuses.
func AllStatuses() []Status {
	return []Status{Scheduled, Completed, Cancelled}
}

// ParseStatus converts a string to a Status or returns an error for unknown
// values.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("appointment: unknown status %q", raw)
}

// Valid reports whether s is one of the supported statuses.
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Glyph returns the one-rune marker used in listings.
func (s Status) Glyph() string {
	switch s {
	case Completed:
		return "✔"
	case Cancelled:
		return "✘"
	default:
		return "●"
	}
}
