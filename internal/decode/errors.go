// internal/decode/errors.go
package decode

import "fmt"

// InvalidEncodingError reports a malformed base64 blob.
// Fatal to the whole decode call: no frames exist without input bytes.
type InvalidEncodingError struct {
	Err error
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("decode: invalid base64 input: %v", e.Err)
}

func (e *InvalidEncodingError) Unwrap() error {
	return e.Err
}

// TruncatedFrameError reports trailing bytes that do not form a whole
// frame. Only returned in strict mode; lenient mode logs and drops.
type TruncatedFrameError struct {
	Remainder int
}

func (e *TruncatedFrameError) Error() string {
	return fmt.Sprintf("decode: %d trailing bytes do not form a whole frame", e.Remainder)
}
