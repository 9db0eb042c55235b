package app

import (
	"context"
	"errors"

	"tableflip.dev/citas/pkg/appointment"
	"tableflip.dev/citas/pkg/store"
)

// Service provides high-level operations over the appointment book so the
// CLI and the TUI share one code path.
type Service struct {
	Persistence store.Persistence
}

var errNoPersistence = errors.New("app: no persistence configured")

// Appointments returns the collection in insertion order.
func (s *Service) Appointments(ctx context.Context) ([]appointment.Appointment, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.List(), nil
}

// Add creates and stores a new scheduled appointment.
func (s *Service) Add(ctx context.Context, clientName, date, at string) (appointment.Appointment, error) {
	if s.Persistence == nil {
		return appointment.Appointment{}, errNoPersistence
	}
	return s.Persistence.Add(clientName, date, at)
}

// Edit replaces the record with a matching id. Unknown ids change nothing.
func (s *Service) Edit(ctx context.Context, record appointment.Appointment) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.Update(record)
}

// Remove deletes an appointment permanently. Unknown ids change nothing.
func (s *Service) Remove(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	s.Persistence.Remove(id)
	return nil
}

// SetStatus re-tags an appointment. All transitions are permitted.
func (s *Service) SetStatus(ctx context.Context, id string, status appointment.Status) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	s.Persistence.SetStatus(id, status)
	return nil
}
