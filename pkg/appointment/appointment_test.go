package appointment

import (
	"testing"
	"time"
)

func TestNewTrimsClientName(t *testing.T) {
	a := New("  Ana  ", "2024-01-01", "10:00")
	if a.ClientName != "Ana" {
		t.Fatalf("expected trimmed client name, got %q", a.ClientName)
	}
	if a.Status != Scheduled {
		t.Fatalf("expected new appointments to start scheduled, got %q", a.Status)
	}
	if a.ID == "" {
		t.Fatalf("expected an id to be assigned")
	}
}

func TestNewAssignsDistinctIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		a := New("Ana", "2024-01-01", "10:00")
		if seen[a.ID] {
			t.Fatalf("duplicate id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		appt    Appointment
		wantErr bool
	}{
		{
			name: "valid",
			appt: Appointment{ID: "1", ClientName: "Ana", Date: "2024-01-01", Time: "10:00", Status: Scheduled},
		},
		{
			name:    "empty client name",
			appt:    Appointment{ID: "1", ClientName: "   ", Date: "2024-01-01", Time: "10:00", Status: Scheduled},
			wantErr: true,
		},
		{
			name:    "missing date",
			appt:    Appointment{ID: "1", ClientName: "Ana", Time: "10:00", Status: Scheduled},
			wantErr: true,
		},
		{
			name:    "missing time",
			appt:    Appointment{ID: "1", ClientName: "Ana", Date: "2024-01-01", Status: Scheduled},
			wantErr: true,
		},
		{
			name:    "bad date",
			appt:    Appointment{ID: "1", ClientName: "Ana", Date: "01/02/2024", Time: "10:00", Status: Scheduled},
			wantErr: true,
		},
		{
			name:    "bad time",
			appt:    Appointment{ID: "1", ClientName: "Ana", Date: "2024-01-01", Time: "10:00am", Status: Scheduled},
			wantErr: true,
		},
		{
			name:    "unknown status",
			appt:    Appointment{ID: "1", ClientName: "Ana", Date: "2024-01-01", Time: "10:00", Status: "pending"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.appt.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestWhen(t *testing.T) {
	a := Appointment{ClientName: "Ana", Date: "2024-02-29", Time: "09:30", Status: Scheduled}
	got, ok := a.When()
	if !ok {
		t.Fatalf("expected a parseable instant")
	}
	want := time.Date(2024, time.February, 29, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	bad := Appointment{Date: "not-a-date", Time: "09:30"}
	if _, ok := bad.When(); ok {
		t.Fatalf("expected malformed date to report !ok")
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range AllStatuses() {
		got, err := ParseStatus(string(s))
		if err != nil || got != s {
			t.Fatalf("round trip for %q failed: %v", s, err)
		}
	}
	if got, err := ParseStatus("  Completed "); err != nil || got != Completed {
		t.Fatalf("expected case and space tolerant parse, got %q, %v", got, err)
	}
	if _, err := ParseStatus("archived"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
