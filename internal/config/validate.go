// internal/config/validate.go
package config

import (
	"fmt"
	"time"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	d := cfg.Decoder

	// ------------------------------------------------------------
	// TIMEZONE VALIDATION
	// ------------------------------------------------------------

	if d.Timezone != "" {
		if _, err := time.LoadLocation(d.Timezone); err != nil {
			return fmt.Errorf("config: unknown timezone %q: %w", d.Timezone, err)
		}
	}

	// ------------------------------------------------------------
	// CATALOG PATH
	// ------------------------------------------------------------

	if d.Catalog == "" {
		return fmt.Errorf("config: catalog path is required")
	}

	// ------------------------------------------------------------
	// FRAME ERROR POLICY
	// ------------------------------------------------------------

	switch d.OnFrameError {
	case "", FrameErrorSkip, FrameErrorAbort:
	default:
		return fmt.Errorf("config: on_frame_error must be %q or %q, got %q",
			FrameErrorSkip, FrameErrorAbort, d.OnFrameError)
	}

	return nil
}
