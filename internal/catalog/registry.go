// internal/catalog/registry.go
package catalog

import (
	"errors"
	"fmt"
)

// Registry maps a frame type id to its payload layout.
// Populated once at startup and read-only afterwards, so it is safe
// for concurrent lookups from any number of decoding goroutines.
type Registry struct {
	specs map[uint16]EventSpec
}

// DuplicateEventTypeError reports two specs claiming the same id.
// This is a programming/configuration error, surfaced at build time,
// never at decode time.
type DuplicateEventTypeError struct {
	ID uint16
}

func (e *DuplicateEventTypeError) Error() string {
	return fmt.Sprintf("catalog: duplicate event type id %d", e.ID)
}

// UnknownEventTypeError reports a lookup for an unregistered id.
// Recoverable at per-frame granularity: the vendor emits ids outside
// any known catalog.
type UnknownEventTypeError struct {
	ID uint16
}

func (e *UnknownEventTypeError) Error() string {
	return fmt.Sprintf("catalog: unknown event type id %d", e.ID)
}

// New builds a registry from event specs, validating each layout
// against the fixed frame geometry and rejecting duplicate ids.
func New(specs []EventSpec) (*Registry, error) {
	if len(specs) == 0 {
		return nil, errors.New("catalog: at least one event spec required")
	}

	m := make(map[uint16]EventSpec, len(specs))

	for _, s := range specs {
		if err := s.validate(); err != nil {
			return nil, err
		}
		if _, exists := m[s.ID]; exists {
			return nil, &DuplicateEventTypeError{ID: s.ID}
		}
		m[s.ID] = s
	}

	return &Registry{specs: m}, nil
}

// Lookup returns the spec registered for id.
func (r *Registry) Lookup(id uint16) (EventSpec, error) {
	s, ok := r.specs[id]
	if !ok {
		return EventSpec{}, &UnknownEventTypeError{ID: id}
	}
	return s, nil
}

// Len reports the number of registered event kinds.
func (r *Registry) Len() int {
	return len(r.specs)
}
