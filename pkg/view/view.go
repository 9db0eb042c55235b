// Package view derives what the list and calendar surfaces render from the
// flat appointment collection plus the transient UI selectors. Every function
// is pure: inputs are never mutated and malformed records degrade to
// "no match" rather than failing.
package view

import (
	"sort"
	"strings"
	"time"

	"tableflip.dev/citas/pkg/appointment"
)

// Search retains appointments whose client name contains query,
// case-insensitively. An empty query matches everything.
func Search(appts []appointment.Appointment, query string) []appointment.Appointment {
	if query == "" {
		return append([]appointment.Appointment(nil), appts...)
	}
	q := strings.ToLower(query)
	out := make([]appointment.Appointment, 0, len(appts))
	for _, a := range appts {
		if strings.Contains(strings.ToLower(a.ClientName), q) {
			out = append(out, a)
		}
	}
	return out
}

// OnDate retains appointments whose date equals date exactly. An empty date
// matches everything.
func OnDate(appts []appointment.Appointment, date string) []appointment.Appointment {
	if date == "" {
		return append([]appointment.Appointment(nil), appts...)
	}
	out := make([]appointment.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

// WithStatus retains appointments carrying the given status. An empty status
// matches everything.
func WithStatus(appts []appointment.Appointment, status appointment.Status) []appointment.Appointment {
	if status == "" {
		return append([]appointment.Appointment(nil), appts...)
	}
	out := make([]appointment.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// SortChronological orders appointments ascending by their combined date and
// time. Ties and unparseable records keep their relative input order;
// unparseable records sort after valid ones.
func SortChronological(appts []appointment.Appointment) []appointment.Appointment {
	out := append([]appointment.Appointment(nil), appts...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, iok := out[i].When()
		tj, jok := out[j].When()
		switch {
		case !iok:
			return false
		case !jok:
			return true
		default:
			return ti.Before(tj)
		}
	})
	return out
}

// Group is one date heading with its appointments in input order.
type Group struct {
	Date         string
	Appointments []appointment.Appointment
}

// GroupByDate partitions appointments by date, in first-seen order of the
// input sequence. It does not sort; callers that want chronological groups
// sort first.
func GroupByDate(appts []appointment.Appointment) []Group {
	index := make(map[string]int, len(appts))
	groups := make([]Group, 0, len(appts))
	for _, a := range appts {
		i, ok := index[a.Date]
		if !ok {
			i = len(groups)
			index[a.Date] = i
			groups = append(groups, Group{Date: a.Date})
		}
		groups[i].Appointments = append(groups[i].Appointments, a)
	}
	return groups
}

// Tally aggregates the counters shown in the header.
type Tally struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Today     int `json:"today"`
}

// Count tallies the collection. Today is measured against now, which the
// caller reads from the wall clock at render time.
func Count(appts []appointment.Appointment, now time.Time) Tally {
	today := appointment.Day(now)
	t := Tally{Total: len(appts)}
	for _, a := range appts {
		switch a.Status {
		case appointment.Scheduled:
			t.Scheduled++
		case appointment.Completed:
			t.Completed++
		case appointment.Cancelled:
			t.Cancelled++
		}
		if a.Date == today {
			t.Today++
		}
	}
	return t
}
