// internal/config/config.go
package config

type Config struct {
	Decoder DecoderConfig `yaml:"decoder"`
}

// ---- DECODER ----

type DecoderConfig struct {
	// Timezone is the IANA zone name attached to resolved timestamps.
	// The device has no zone awareness; this is a label, not a conversion.
	Timezone string `yaml:"timezone"`

	// Catalog is the path to the event-kind schema file.
	Catalog string `yaml:"catalog"`

	// OnFrameError is "skip" (log and continue) or "abort".
	OnFrameError string `yaml:"on_frame_error"`

	// StrictFrames makes trailing partial-frame bytes an error
	// instead of a logged drop.
	StrictFrames bool `yaml:"strict_frames"`
}

// ---- POLICY VALUES ----

const (
	FrameErrorSkip  = "skip"
	FrameErrorAbort = "abort"
)
