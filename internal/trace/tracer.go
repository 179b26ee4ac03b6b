package trace

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tracer is the main interface for emitting trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev *Event)

	// Flush ensures all buffered events are written.
	Flush() error

	// Close flushes and releases resources.
	Close() error

	// Level returns the current tracing level.
	Level() Level

	// Enabled returns true if tracing is active (Level > LevelOff).
	Enabled() bool
}

// Format selects the zap encoder.
type Format uint8

const (
	FormatAuto Format = iota
	FormatConsole
	FormatJSON
)

// Config holds tracer configuration.
type Config struct {
	Level      Level     // tracing level
	Format     Format    // FormatAuto picks JSON for *.json / *.ndjson paths
	Output     io.Writer // if nil, OutputPath is used
	OutputPath string    // file path, "" or "-" for stderr
}

// New creates a Tracer based on Config.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}

	format := cfg.Format
	if format == FormatAuto {
		format = FormatConsole
		if strings.HasSuffix(cfg.OutputPath, ".json") || strings.HasSuffix(cfg.OutputPath, ".ndjson") {
			format = FormatJSON
		}
	}

	var (
		ws     zapcore.WriteSyncer
		closer io.Closer
	)
	switch {
	case cfg.Output != nil:
		ws = zapcore.AddSync(cfg.Output)
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		ws = zapcore.Lock(zapcore.AddSync(os.Stderr))
	default:
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open log output: %w", err)
		}
		ws = zapcore.Lock(f)
		closer = f
	}

	var enc zapcore.Encoder
	if format == FormatJSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	logger := zap.New(zapcore.NewCore(enc, ws, zapcore.DebugLevel))
	t := NewZapTracer(logger, cfg.Level)
	t.closer = closer
	return t, nil
}
