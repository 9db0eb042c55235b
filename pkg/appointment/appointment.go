package appointment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DateLayout is the calendar-date wire format, e.g. "2024-02-29".
	DateLayout = "2006-01-02"
	// TimeLayout is the time-of-day wire format, e.g. "09:30".
	TimeLayout = "15:04"
)

// Appointment is a single booked client slot. The JSON field names are the
// durable record format and must stay stable.
type Appointment struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     Status `json:"status"`
}

// New builds a scheduled appointment with a fresh id. The client name is
// trimmed of surrounding whitespace before it is stored.
func New(clientName, date, at string) *Appointment {
	return &Appointment{
		ID:         uuid.NewString(),
		ClientName: strings.TrimSpace(clientName),
		Date:       date,
		Time:       at,
		Status:     Scheduled,
	}
}

// Validate checks every field the way the form boundary does: a non-empty
// trimmed client name, parseable date and time, and a known status.
func (a *Appointment) Validate() error {
	if a == nil {
		return errors.New("appointment: nil")
	}
	if strings.TrimSpace(a.ClientName) == "" {
		return errors.New("appointment: client name required")
	}
	if _, err := time.Parse(DateLayout, a.Date); err != nil {
		return fmt.Errorf("appointment: bad date %q", a.Date)
	}
	if _, err := time.Parse(TimeLayout, a.Time); err != nil {
		return fmt.Errorf("appointment: bad time %q", a.Time)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("appointment: unknown status %q", a.Status)
	}
	return nil
}

// When returns the combined date and time instant. Records with malformed
// fields report ok == false instead of failing.
func (a *Appointment) When() (time.Time, bool) {
	t, err := time.Parse(DateLayout+" "+TimeLayout, a.Date+" "+a.Time)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Day formats a wall-clock instant as a calendar-date string, the same shape
// Appointment.Date carries.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

func (a *Appointment) String() string {
	return fmt.Sprintf("%s %s  %s", a.Time, a.Status.Glyph(), a.ClientName)
}
