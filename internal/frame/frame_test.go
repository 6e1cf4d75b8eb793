// internal/frame/frame_test.go
package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// helper to build a frame with a known header
func testFrame(source uint8, typeID uint16, ts, seq uint32) []byte {
	b := make([]byte, Size)
	binary.BigEndian.PutUint16(b[0:2], uint16(source)<<12|typeID&MaxTypeID)
	binary.BigEndian.PutUint32(b[2:6], ts)
	binary.BigEndian.PutUint32(b[6:10], seq)
	return b
}

// ---- tests ----

func TestSplit_ExactMultiple(t *testing.T) {
	buf := make([]byte, Size*3)

	frames, remainder := Split(buf)

	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	if remainder != 0 {
		t.Fatalf("expected remainder 0, got %d", remainder)
	}
}

func TestSplit_TrailingBytesReported(t *testing.T) {
	buf := make([]byte, Size*2+7)

	frames, remainder := Split(buf)

	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if remainder != 7 {
		t.Fatalf("expected remainder 7, got %d", remainder)
	}
}

func TestSplit_ShortBuffer(t *testing.T) {
	frames, remainder := Split(make([]byte, Size-1))

	if len(frames) != 0 {
		t.Fatalf("expected no frames, got %d", len(frames))
	}
	if remainder != Size-1 {
		t.Fatalf("expected remainder %d, got %d", Size-1, remainder)
	}
}

func TestSplit_Restartable(t *testing.T) {
	buf := make([]byte, Size*2)
	for i := range buf {
		buf[i] = byte(i)
	}

	first, _ := Split(buf)
	second, _ := Split(buf)

	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !bytes.Equal(first[i], second[i]) {
			t.Fatalf("frame %d differs between runs", i)
		}
	}
}

func TestParseHeader_PackedWord(t *testing.T) {
	// 0x20AB = (2 << 12) | 0x0AB
	fb := testFrame(2, 0x0AB, 100000, 42)

	h, err := ParseHeader(fb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.Source != 2 {
		t.Fatalf("expected source 2, got %d", h.Source)
	}
	if h.TypeID != 0x0AB {
		t.Fatalf("expected type id 0x0AB, got 0x%03X", h.TypeID)
	}
	if h.RawTime != 100000 {
		t.Fatalf("expected raw time 100000, got %d", h.RawTime)
	}
	if h.SeqNum != 42 {
		t.Fatalf("expected seq 42, got %d", h.SeqNum)
	}
}

func TestParseHeader_TooShort(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	var mh *MalformedHeaderError
	if !errors.As(err, &mh) {
		t.Fatalf("expected MalformedHeaderError, got %T", err)
	}
	if mh.Len != HeaderSize-1 {
		t.Fatalf("expected reported len %d, got %d", HeaderSize-1, mh.Len)
	}
}

func TestPayload_Region(t *testing.T) {
	fb := testFrame(1, 5, 0, 0)
	fb[10] = 0xAA
	fb[25] = 0xBB

	p := Payload(fb)

	if len(p) != PayloadSize {
		t.Fatalf("expected %d payload bytes, got %d", PayloadSize, len(p))
	}
	if p[0] != 0xAA || p[15] != 0xBB {
		t.Fatalf("payload region misaligned: % X", p)
	}
}

func TestPayload_ShortFrame(t *testing.T) {
	if p := Payload(make([]byte, HeaderSize)); p != nil {
		t.Fatalf("expected nil payload for header-only frame, got %d bytes", len(p))
	}
}
