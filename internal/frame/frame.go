// internal/frame/frame.go
package frame

import (
	"encoding/binary"
	"fmt"
)

// Event frame layout constants.
// These values define the wire format and MUST NOT be configurable.

// ---- FRAME GEOMETRY ----

// Size is the fixed length of one event frame in bytes.
const Size = 26

// HeaderSize covers the source/type word, raw timestamp and sequence number.
const HeaderSize = 10

// PayloadSize is the kind-specific region following the header.
const PayloadSize = Size - HeaderSize

// MaxTypeID is the largest type id representable in the 12-bit field.
const MaxTypeID = 0x0FFF

// Header is the common leading fields of every frame.
type Header struct {
	Source  uint8  // high nibble of the first word
	TypeID  uint16 // low 12 bits of the first word
	RawTime uint32 // seconds since the vendor epoch
	SeqNum  uint32
}

// MalformedHeaderError reports a frame too short to carry a header.
type MalformedHeaderError struct {
	Len int
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("frame: %d bytes is too short for a %d-byte header", e.Len, HeaderSize)
}

// ParseHeader extracts the common header from one frame.
// Pure function over bytes. It does not assume the caller validated
// length, even though Split only ever hands out whole frames.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, &MalformedHeaderError{Len: len(b)}
	}

	word := binary.BigEndian.Uint16(b[0:2])

	return Header{
		Source:  uint8(word >> 12),
		TypeID:  word & MaxTypeID,
		RawTime: binary.BigEndian.Uint32(b[2:6]),
		SeqNum:  binary.BigEndian.Uint32(b[6:10]),
	}, nil
}

// Payload returns the kind-specific region of one frame.
// The returned slice aliases the input; callers that outlive the
// buffer must copy what they keep.
func Payload(b []byte) []byte {
	if len(b) <= HeaderSize {
		return nil
	}
	if len(b) > Size {
		return b[HeaderSize:Size]
	}
	return b[HeaderSize:]
}

// Split slices buf into fixed-size frames, in input order,
// non-overlapping. Frames alias buf; no copies are made.
// The returned remainder is the count of trailing bytes that do not
// form a whole frame. They are never included in a frame; policy for
// them belongs to the caller.
// No IO. No side effects. Re-splitting the same buffer yields the
// same frames.
func Split(buf []byte) (frames [][]byte, remainder int) {
	n := len(buf) / Size
	if n == 0 {
		return nil, len(buf)
	}

	frames = make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, buf[i*Size:(i+1)*Size])
	}

	return frames, len(buf) % Size
}
