// internal/decode/pipeline.go
package decode

import (
	"encoding/base64"

	"go.uber.org/zap"

	"github.com/tamzrod/tandem-decoder/internal/catalog"
	"github.com/tamzrod/tandem-decoder/internal/frame"
)

// Policy selects how the pipeline treats per-frame decode failures.
type Policy int

const (
	// SkipBadFrames logs and drops undecodable frames, continuing
	// with the rest of the sequence. This is the default: the vendor
	// emits type ids outside any known catalog as a matter of course.
	SkipBadFrames Policy = iota

	// AbortOnBadFrame stops the sequence at the first undecodable
	// frame and surfaces its error.
	AbortOnBadFrame
)

// Options tune pipeline behavior. The zero value is the default:
// lenient truncation handling, skip-and-log failures, silent logger.
type Options struct {
	Policy Policy

	// StrictFrames makes a trailing partial frame an error instead
	// of a logged drop.
	StrictFrames bool

	// Logger receives skipped-frame and truncation warnings.
	// Nil means zap.NewNop().
	Logger *zap.Logger
}

// Pipeline turns raw event blobs into ordered decoded events.
// All state is read-only after construction, so one pipeline may
// decode any number of blobs concurrently.
type Pipeline struct {
	reg      *catalog.Registry
	resolver frame.Resolver
	policy   Policy
	strict   bool
	log      *zap.Logger
}

// New builds a pipeline over an already-validated registry.
func New(reg *catalog.Registry, resolver frame.Resolver, opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pipeline{
		reg:      reg,
		resolver: resolver,
		policy:   opts.Policy,
		strict:   opts.StrictFrames,
		log:      logger,
	}
}

// DecodeBase64 decodes a vendor API response body.
// The two input paths yield bit-identical event sequences for the
// same underlying bytes.
func (p *Pipeline) DecodeBase64(blob string) (*Iterator, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, &InvalidEncodingError{Err: err}
	}
	return p.Decode(raw)
}

// Decode decodes an already-raw blob, e.g. one retrieved from storage
// for offline re-decoding.
func (p *Pipeline) Decode(raw []byte) (*Iterator, error) {
	frames, remainder := frame.Split(raw)

	if remainder != 0 {
		if p.strict {
			return nil, &TruncatedFrameError{Remainder: remainder}
		}
		p.log.Warn("dropping trailing partial frame",
			zap.Int("remainder_bytes", remainder),
			zap.Int("whole_frames", len(frames)),
		)
	}

	return &Iterator{p: p, frames: frames}, nil
}

// DecodeAll is Decode with the iteration done for the caller.
func (p *Pipeline) DecodeAll(raw []byte) ([]Event, error) {
	it, err := p.Decode(raw)
	if err != nil {
		return nil, err
	}

	var events []Event
	for it.Next() {
		events = append(events, it.Event())
	}
	return events, it.Err()
}

// decodeFrame runs one frame through header parse, timestamp
// resolution, registry lookup and payload extraction.
// All-or-nothing: any failure yields no partial event.
func (p *Pipeline) decodeFrame(fb []byte) (Event, error) {
	h, err := frame.ParseHeader(fb)
	if err != nil {
		return Event{}, err
	}

	spec, err := p.reg.Lookup(h.TypeID)
	if err != nil {
		return Event{}, err
	}

	fields, err := spec.Decode(frame.Payload(fb))
	if err != nil {
		return Event{}, err
	}

	return Event{
		TypeID:    h.TypeID,
		Name:      spec.Name,
		Source:    h.Source,
		Timestamp: p.resolver.Resolve(h.RawTime),
		SeqNum:    h.SeqNum,
		Fields:    fields,
	}, nil
}

// Iterator walks decoded events lazily, strictly in frame order.
// One frame's failure never corrupts or blocks the frames after it.
// Not safe for concurrent use; create one per goroutine.
type Iterator struct {
	p      *Pipeline
	frames [][]byte
	idx    int
	cur    Event
	err    error
}

// Next advances to the next decodable event. It returns false when
// the input is exhausted or, under AbortOnBadFrame, when a frame
// fails to decode (Err then reports why).
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}

	for it.idx < len(it.frames) {
		fb := it.frames[it.idx]
		it.idx++

		ev, err := it.p.decodeFrame(fb)
		if err == nil {
			it.cur = ev
			return true
		}

		if it.p.policy == AbortOnBadFrame {
			it.err = err
			return false
		}

		it.p.log.Warn("skipping undecodable frame",
			zap.Int("frame_index", it.idx-1),
			zap.Error(err),
		)
	}

	return false
}

// Event returns the event produced by the last successful Next.
func (it *Iterator) Event() Event {
	return it.cur
}

// Err reports the frame error that stopped the sequence, if any.
// Always nil under SkipBadFrames.
func (it *Iterator) Err() error {
	return it.err
}
