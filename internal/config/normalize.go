// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.Decoder

	if d.Timezone == "" {
		d.Timezone = "UTC"
	}

	if d.OnFrameError == "" {
		d.OnFrameError = FrameErrorSkip
	}
}
