// cmd/pumpcat/main.go
package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/tamzrod/tandem-decoder/internal/catalog"
	"github.com/tamzrod/tandem-decoder/internal/config"
	"github.com/tamzrod/tandem-decoder/internal/decode"
	"github.com/tamzrod/tandem-decoder/internal/frame"
)

func main() {
	cfgPath := pflag.StringP("config", "c", "decoder.yaml", "path to decoder config")
	input := pflag.StringP("input", "i", "-", "blob to decode; '-' reads stdin")
	rawInput := pflag.Bool("raw", false, "input is raw frame bytes, not base64 text")
	pflag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	if err := config.Validate(cfg); err != nil {
		logger.Fatal("config validation failed", zap.Error(err))
	}

	config.Normalize(cfg)

	// --------------------
	// Build the pipeline
	// --------------------

	loc, err := time.LoadLocation(cfg.Decoder.Timezone)
	if err != nil {
		logger.Fatal("timezone load failed", zap.Error(err))
	}

	reg, err := catalog.LoadFile(cfg.Decoder.Catalog)
	if err != nil {
		logger.Fatal("catalog load failed", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.String("path", cfg.Decoder.Catalog),
		zap.Int("event_kinds", reg.Len()),
	)

	policy := decode.SkipBadFrames
	if cfg.Decoder.OnFrameError == config.FrameErrorAbort {
		policy = decode.AbortOnBadFrame
	}

	pipeline := decode.New(reg, frame.NewResolver(loc), decode.Options{
		Policy:       policy,
		StrictFrames: cfg.Decoder.StrictFrames,
		Logger:       logger,
	})

	// --------------------
	// Read the blob
	// --------------------

	blob, err := readInput(*input)
	if err != nil {
		logger.Fatal("input read failed", zap.Error(err))
	}

	var it *decode.Iterator
	if *rawInput {
		it, err = pipeline.Decode(blob)
	} else {
		it, err = pipeline.DecodeBase64(sanitizeBase64(string(blob)))
	}
	if err != nil {
		logger.Fatal("decode failed", zap.Error(err))
	}

	// --------------------
	// Stream events as NDJSON
	// --------------------

	enc := json.NewEncoder(os.Stdout)
	count := 0

	for it.Next() {
		ev := it.Event()
		if err := enc.Encode(ev); err != nil {
			logger.Fatal("output write failed", zap.Error(err))
		}
		count++
	}

	if err := it.Err(); err != nil {
		logger.Fatal("decode aborted", zap.Int("events_emitted", count), zap.Error(err))
	}

	logger.Info("decode complete", zap.Int("events", count))
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// sanitizeBase64 removes all whitespace, not just the outer runs:
// large API bodies and files are often line-wrapped mid-blob.
func sanitizeBase64(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}
