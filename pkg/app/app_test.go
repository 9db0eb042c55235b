package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"tableflip.dev/citas/pkg/appointment"
)

type memoryPersistence struct {
	counter int
	appts   []appointment.Appointment
}

func (m *memoryPersistence) List() []appointment.Appointment {
	out := make([]appointment.Appointment, len(m.appts))
	copy(out, m.appts)
	return out
}

func (m *memoryPersistence) Get(id string) (appointment.Appointment, bool) {
	for _, a := range m.appts {
		if a.ID == id {
			return a, true
		}
	}
	return appointment.Appointment{}, false
}

func (m *memoryPersistence) Add(clientName, date, at string) (appointment.Appointment, error) {
	a := appointment.Appointment{
		ID:         fmt.Sprintf("id-%d", m.counter),
		ClientName: strings.TrimSpace(clientName),
		Date:       date,
		Time:       at,
		Status:     appointment.Scheduled,
	}
	m.counter++
	if err := a.Validate(); err != nil {
		return appointment.Appointment{}, err
	}
	m.appts = append(m.appts, a)
	return a, nil
}

func (m *memoryPersistence) Update(record appointment.Appointment) error {
	if err := record.Validate(); err != nil {
		return err
	}
	for i := range m.appts {
		if m.appts[i].ID == record.ID {
			m.appts[i] = record
		}
	}
	return nil
}

func (m *memoryPersistence) Remove(id string) {
	for i := range m.appts {
		if m.appts[i].ID == id {
			m.appts = append(m.appts[:i], m.appts[i+1:]...)
			return
		}
	}
}

func (m *memoryPersistence) SetStatus(id string, status appointment.Status) {
	if !status.Valid() {
		return
	}
	for i := range m.appts {
		if m.appts[i].ID == id {
			m.appts[i].Status = status
		}
	}
}

func TestServiceRequiresPersistence(t *testing.T) {
	ctx := context.Background()
	s := &Service{}

	if _, err := s.Appointments(ctx); err == nil {
		t.Fatalf("expected error without persistence")
	}
	if _, err := s.Add(ctx, "Ana", "2024-01-01", "10:00"); err == nil {
		t.Fatalf("expected error without persistence")
	}
	if err := s.Remove(ctx, "x"); err == nil {
		t.Fatalf("expected error without persistence")
	}
	if err := s.SetStatus(ctx, "x", appointment.Completed); err == nil {
		t.Fatalf("expected error without persistence")
	}
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	s := &Service{Persistence: &memoryPersistence{}}

	a, err := s.Add(ctx, "Ana", "2024-01-01", "10:00")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	a.Time = "11:00"
	if err := s.Edit(ctx, a); err != nil {
		t.Fatalf("edit: %v", err)
	}

	if err := s.SetStatus(ctx, a.ID, appointment.Completed); err != nil {
		t.Fatalf("set status: %v", err)
	}

	all, err := s.Appointments(ctx)
	if err != nil {
		t.Fatalf("appointments: %v", err)
	}
	if len(all) != 1 || all[0].Time != "11:00" || all[0].Status != appointment.Completed {
		t.Fatalf("unexpected state: %+v", all)
	}

	if err := s.Remove(ctx, a.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if all, _ := s.Appointments(ctx); len(all) != 0 {
		t.Fatalf("expected empty collection, got %+v", all)
	}
}
