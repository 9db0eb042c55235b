package view

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/citas/pkg/appointment"
)

func appt(id, name, date, at string, status appointment.Status) appointment.Appointment {
	return appointment.Appointment{ID: id, ClientName: name, Date: date, Time: at, Status: status}
}

func ids(appts []appointment.Appointment) []string {
	out := make([]string, len(appts))
	for i, a := range appts {
		out[i] = a.ID
	}
	return out
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	appts := []appointment.Appointment{
		appt("a", "María Ana López", "2024-01-01", "10:00", appointment.Scheduled),
		appt("b", "Eva", "2024-01-01", "11:00", appointment.Scheduled),
	}

	got := Search(appts, "ana")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected only María Ana López, got %v", ids(got))
	}

	if got := Search(appts, ""); len(got) != 2 {
		t.Fatalf("empty query must match everything, got %v", ids(got))
	}
	if got := Search(appts, "nadie"); len(got) != 0 {
		t.Fatalf("expected no match, got %v", ids(got))
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	appts := []appointment.Appointment{
		appt("a", "Ana", "2024-01-01", "10:00", appointment.Scheduled),
	}
	before := append([]appointment.Appointment(nil), appts...)
	_ = Search(appts, "x")
	if !reflect.DeepEqual(appts, before) {
		t.Fatalf("input mutated")
	}
}

func TestOnDate(t *testing.T) {
	appts := []appointment.Appointment{
		appt("a", "Ana", "2024-01-01", "10:00", appointment.Scheduled),
		appt("b", "Eva", "2024-01-02", "11:00", appointment.Scheduled),
	}
	if got := OnDate(appts, "2024-01-02"); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected only b, got %v", ids(got))
	}
	if got := OnDate(appts, ""); len(got) != 2 {
		t.Fatalf("unset date must be a no-op, got %v", ids(got))
	}
}

func TestSortChronologicalIsStable(t *testing.T) {
	appts := []appointment.Appointment{
		appt("a", "Ana", "2024-01-01", "09:00", appointment.Scheduled),
		appt("b", "Eva", "2024-01-01", "09:00", appointment.Scheduled),
		appt("c", "Mar", "2023-12-31", "23:30", appointment.Scheduled),
	}

	got := ids(SortChronological(appts))
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSortChronologicalPutsMalformedLast(t *testing.T) {
	appts := []appointment.Appointment{
		appt("x", "Sin Fecha", "bad", "bad", appointment.Scheduled),
		appt("a", "Ana", "2024-01-01", "10:00", appointment.Scheduled),
		appt("y", "Tampoco", "", "", appointment.Scheduled),
	}
	got := ids(SortChronological(appts))
	want := []string{"a", "x", "y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGroupByDateFollowsInputOrder(t *testing.T) {
	appts := []appointment.Appointment{
		appt("a", "Ana", "2024-02-02", "10:00", appointment.Scheduled),
		appt("b", "Eva", "2024-02-01", "11:00", appointment.Scheduled),
		appt("c", "Mar", "2024-02-02", "09:00", appointment.Scheduled),
	}

	groups := GroupByDate(appts)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Date != "2024-02-02" || groups[1].Date != "2024-02-01" {
		t.Fatalf("groups must follow first-seen order, got %q then %q", groups[0].Date, groups[1].Date)
	}
	if got := ids(groups[0].Appointments); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("members must preserve insertion order, got %v", got)
	}
}

func TestCount(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 0, 0, 0, time.Local)
	appts := []appointment.Appointment{
		appt("a", "Ana", "2024-03-10", "10:00", appointment.Scheduled),
		appt("b", "Eva", "2024-03-11", "11:00", appointment.Completed),
		appt("c", "Mar", "2024-03-10", "12:00", appointment.Cancelled),
	}

	got := Count(appts, now)
	want := Tally{Total: 3, Scheduled: 1, Completed: 1, Cancelled: 1, Today: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
