// internal/catalog/schema.go
package catalog

import (
	"encoding/binary"
	"fmt"

	"github.com/tamzrod/tandem-decoder/internal/frame"
)

// FieldSpec declares one field of an event payload.
// Geometry and encoding only: no semantics.
type FieldSpec struct {
	Name   string  `yaml:"name"`
	Offset int     `yaml:"offset"`           // byte offset within the payload region
	Width  int     `yaml:"width"`            // 1, 2 or 4 bytes, big-endian
	Signed bool    `yaml:"signed,omitempty"` // sign-extend the raw value
	Scale  float64 `yaml:"scale,omitempty"`  // fixed-point divisor; 0 or 1 means none
}

// EventSpec declares the payload layout for one event kind.
type EventSpec struct {
	ID     uint16      `yaml:"id"`
	Name   string      `yaml:"name"`
	Fields []FieldSpec `yaml:"fields"`
}

// Field is one decoded payload field.
// Raw is the integer exactly as stored (sign-extended when declared
// signed); Value is Raw divided by the declared scale.
type Field struct {
	Name  string  `json:"name"`
	Raw   int64   `json:"raw"`
	Value float64 `json:"value"`
}

// MalformedPayloadError reports a payload too short for a declared layout.
type MalformedPayloadError struct {
	ID  uint16
	Len int
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("catalog: payload of %d bytes too short for event type %d", e.Len, e.ID)
}

// Decode extracts the declared fields from one payload region, in
// declaration order. Total over any payload of the full frame payload
// size; a structurally shorter payload is the only failure.
// No IO. No side effects.
func (s EventSpec) Decode(payload []byte) ([]Field, error) {
	fields := make([]Field, 0, len(s.Fields))

	for _, f := range s.Fields {
		if f.Offset+f.Width > len(payload) {
			return nil, &MalformedPayloadError{ID: s.ID, Len: len(payload)}
		}

		raw := extract(payload[f.Offset:f.Offset+f.Width], f.Signed)

		scale := f.Scale
		if scale == 0 {
			scale = 1
		}

		fields = append(fields, Field{
			Name:  f.Name,
			Raw:   raw,
			Value: float64(raw) / scale,
		})
	}

	return fields, nil
}

// extract reads a big-endian integer of 1, 2 or 4 bytes.
// Width is validated at registry build time; len(b) IS the width here.
func extract(b []byte, signed bool) int64 {
	switch len(b) {
	case 1:
		if signed {
			return int64(int8(b[0]))
		}
		return int64(b[0])
	case 2:
		v := binary.BigEndian.Uint16(b)
		if signed {
			return int64(int16(v))
		}
		return int64(v)
	default: // 4, guaranteed by Validate
		v := binary.BigEndian.Uint32(b)
		if signed {
			return int64(int32(v))
		}
		return int64(v)
	}
}

// validate checks one event spec against the fixed frame geometry.
// It MUST NOT mutate the spec.
func (s EventSpec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("catalog: event type %d has no name", s.ID)
	}
	if s.ID > frame.MaxTypeID {
		return fmt.Errorf("catalog: event %q: id %d exceeds the 12-bit type field", s.Name, s.ID)
	}

	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("catalog: event %q: field with empty name", s.Name)
		}
		if f.Width != 1 && f.Width != 2 && f.Width != 4 {
			return fmt.Errorf("catalog: event %q field %q: width must be 1, 2 or 4, got %d",
				s.Name, f.Name, f.Width)
		}
		if f.Offset < 0 {
			return fmt.Errorf("catalog: event %q field %q: negative offset", s.Name, f.Name)
		}
		if f.Offset+f.Width > frame.PayloadSize {
			return fmt.Errorf("catalog: event %q field %q: bytes %d-%d exceed the %d-byte payload",
				s.Name, f.Name, f.Offset, f.Offset+f.Width-1, frame.PayloadSize)
		}
		if f.Scale < 0 {
			return fmt.Errorf("catalog: event %q field %q: negative scale", s.Name, f.Name)
		}
	}

	return nil
}
