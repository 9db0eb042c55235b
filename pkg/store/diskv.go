package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/citas/pkg/appointment"
)

// slotKey is the single durable slot holding the JSON-serialized collection.
const slotKey = "appointments"

// Persistence defines the persistence contract for the appointment book.
// The collection keeps insertion order; every mutation rewrites the durable
// slot wholesale. Durable writes are best effort: a failed write is logged
// and the in-memory mutation stands.
type Persistence interface {
	// List returns a copy of the collection in insertion order.
	List() []appointment.Appointment
	// Get returns the appointment with the given id, if present.
	Get(id string) (appointment.Appointment, bool)
	// Add validates the draft fields, assigns an id, appends the record and
	// returns it. An invalid draft leaves the collection untouched.
	Add(clientName, date, at string) (appointment.Appointment, error)
	// Update replaces the record whose id matches. An unknown id is a silent
	// no-op; an invalid record is rejected before any state change.
	Update(record appointment.Appointment) error
	// Remove deletes the record with the given id if present.
	Remove(id string)
	// SetStatus changes only the status of the record with the given id.
	// Unknown ids and unknown statuses are silent no-ops.
	SetStatus(id string, status appointment.Status)
}

// Load creates a Persistence backed by diskv using the provided config and
// reads the durable slot. An absent or unreadable slot starts empty.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	p := &persistence{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
	p.load()
	return p, nil
}

type persistence struct {
	d     *diskv.Diskv
	appts []appointment.Appointment
}

// load reads the slot once at startup. Anything short of a well-formed array
// of valid appointments falls back to an empty collection, logged but never
// surfaced as a failure.
func (p *persistence) load() {
	if !p.d.Has(slotKey) {
		return
	}
	data, err := p.d.Read(slotKey)
	if err != nil {
		log.Printf("store: read %s: %v", slotKey, err)
		return
	}
	appts, err := decode(data)
	if err != nil {
		log.Printf("store: discarding persisted appointments: %v", err)
		return
	}
	p.appts = appts
}

// decode unmarshals and shape-checks the persisted array field by field.
// A single bad record rejects the whole blob.
func decode(data []byte) ([]appointment.Appointment, error) {
	var appts []appointment.Appointment
	if err := json.Unmarshal(data, &appts); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(appts))
	for i := range appts {
		a := &appts[i]
		if strings.TrimSpace(a.ID) == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("record %d: duplicate id %s", i, a.ID)
		}
		seen[a.ID] = true
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return appts, nil
}

func (p *persistence) List() []appointment.Appointment {
	out := make([]appointment.Appointment, len(p.appts))
	copy(out, p.appts)
	return out
}

func (p *persistence) Get(id string) (appointment.Appointment, bool) {
	for _, a := range p.appts {
		if a.ID == id {
			return a, true
		}
	}
	return appointment.Appointment{}, false
}

func (p *persistence) Add(clientName, date, at string) (appointment.Appointment, error) {
	a := appointment.New(clientName, date, at)
	if err := a.Validate(); err != nil {
		return appointment.Appointment{}, err
	}
	for p.hasID(a.ID) {
		a.ID = uuid.NewString()
	}
	p.appts = append(p.appts, *a)
	p.persist()
	return *a, nil
}

func (p *persistence) Update(record appointment.Appointment) error {
	record.ClientName = strings.TrimSpace(record.ClientName)
	if err := record.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(record.ID) == "" {
		return errors.New("store: id required")
	}
	for i := range p.appts {
		if p.appts[i].ID == record.ID {
			p.appts[i] = record
			p.persist()
			return nil
		}
	}
	// Unknown id: no record is created.
	return nil
}

func (p *persistence) Remove(id string) {
	for i := range p.appts {
		if p.appts[i].ID == id {
			p.appts = append(p.appts[:i], p.appts[i+1:]...)
			p.persist()
			return
		}
	}
}

func (p *persistence) SetStatus(id string, status appointment.Status) {
	if !status.Valid() {
		return
	}
	for i := range p.appts {
		if p.appts[i].ID == id {
			p.appts[i].Status = status
			p.persist()
			return
		}
	}
}

func (p *persistence) hasID(id string) bool {
	_, ok := p.Get(id)
	return ok
}

// persist rewrites the durable slot from the in-memory collection. Failures
// are logged and swallowed.
func (p *persistence) persist() {
	data, err := json.Marshal(p.appts)
	if err != nil {
		log.Printf("store: marshal appointments: %v", err)
		return
	}
	if err := p.d.Write(slotKey, data); err != nil {
		log.Printf("store: write %s: %v", slotKey, err)
	}
}
