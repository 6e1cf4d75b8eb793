// internal/frame/timestamp.go
package frame

import "time"

// Epoch is the vendor's reference instant: 2008-01-01T00:00:00Z as
// Unix time. Raw frame timestamps count seconds from here.
const Epoch int64 = 1199145600

// Resolver converts raw device timestamps into zone-labeled times.
//
// The device counts seconds of the user's local wall-clock time and
// attaches no zone. Resolution therefore keeps the wall-clock fields
// produced by UTC epoch arithmetic verbatim and swaps only the zone
// label. This is deliberately NOT a timezone conversion.
type Resolver struct {
	loc *time.Location
}

// NewResolver returns a resolver labeling times with loc.
// A nil loc falls back to UTC.
func NewResolver(loc *time.Location) Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return Resolver{loc: loc}
}

// Resolve maps a raw timestamp to an absolute, zone-labeled time.
// Total over the full uint32 domain.
func (r Resolver) Resolve(raw uint32) time.Time {
	utc := time.Unix(Epoch+int64(raw), 0).UTC()

	// Rebuild with the same wall-clock fields under the target zone.
	t := relabel(utc, r.loc)
	if sameWall(t, utc) {
		return t
	}

	// The wall time does not exist in the zone (DST spring-forward
	// gap), so time.Date normalized it and moved the clock. Pin the
	// wall-clock fields with the fixed offset in effect after the
	// transition instead. Gaps never exceed two hours, so two hours
	// past the normalized instant is always on the far side.
	name, offset := t.Add(2 * time.Hour).Zone()
	return relabel(utc, time.FixedZone(name, offset))
}

func relabel(utc time.Time, loc *time.Location) time.Time {
	return time.Date(
		utc.Year(), utc.Month(), utc.Day(),
		utc.Hour(), utc.Minute(), utc.Second(),
		0, loc,
	)
}

func sameWall(a, b time.Time) bool {
	return a.Year() == b.Year() &&
		a.Month() == b.Month() &&
		a.Day() == b.Day() &&
		a.Hour() == b.Hour() &&
		a.Minute() == b.Minute() &&
		a.Second() == b.Second()
}
