// internal/catalog/registry_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to build a minimal valid spec
func spec(id uint16, name string, fields ...FieldSpec) EventSpec {
	if fields == nil {
		fields = []FieldSpec{{Name: "value", Offset: 0, Width: 2}}
	}
	return EventSpec{ID: id, Name: name, Fields: fields}
}

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	_, err := New([]EventSpec{
		spec(7, "A"),
		spec(7, "B"),
	})
	require.Error(t, err)

	var dup *DuplicateEventTypeError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, uint16(7), dup.ID)
}

func TestNew_RejectsOversizedID(t *testing.T) {
	_, err := New([]EventSpec{spec(0x1000, "TooBig")})
	require.Error(t, err)
}

func TestNew_RejectsFieldBeyondPayload(t *testing.T) {
	_, err := New([]EventSpec{
		spec(1, "Overrun", FieldSpec{Name: "x", Offset: 14, Width: 4}),
	})
	require.Error(t, err)
}

func TestNew_AcceptsFieldEndingAtPayloadBoundary(t *testing.T) {
	_, err := New([]EventSpec{
		spec(1, "Edge", FieldSpec{Name: "x", Offset: 12, Width: 4}),
	})
	require.NoError(t, err)
}

func TestNew_RejectsBadWidth(t *testing.T) {
	for _, w := range []int{0, 3, 8} {
		_, err := New([]EventSpec{
			spec(1, "BadWidth", FieldSpec{Name: "x", Offset: 0, Width: w}),
		})
		assert.Error(t, err, "width %d", w)
	}
}

func TestNew_RejectsUnnamedEvent(t *testing.T) {
	_, err := New([]EventSpec{spec(1, "")})
	require.Error(t, err)
}

func TestLookup_Unknown(t *testing.T) {
	reg, err := New([]EventSpec{spec(1, "Known")})
	require.NoError(t, err)

	_, err = reg.Lookup(99)
	require.Error(t, err)

	var unknown *UnknownEventTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint16(99), unknown.ID)
}

func TestLookup_Known(t *testing.T) {
	reg, err := New([]EventSpec{spec(21, "Glucose")})
	require.NoError(t, err)

	s, err := reg.Lookup(21)
	require.NoError(t, err)
	assert.Equal(t, "Glucose", s.Name)
	assert.Equal(t, 1, reg.Len())
}
