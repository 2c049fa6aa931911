// Package logging builds the zap logger used by the command line tool.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Opts selects the logger's level, encoding and color mode.
type Opts struct {
	Level    string // debug, info, warn, error
	Encoding string // console or json
	Color    string // auto, always, never
}

// Encoder returns the zapcore encoder for opts. Color "auto" enables level
// colors only when stderr is a terminal.
func (opts Opts) Encoder() (zapcore.Encoder, error) {
	switch opts.Encoding {
	case "json":
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	case "console", "":
		useColor, err := opts.useColor()
		if err != nil {
			return nil, err
		}
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = TimeOffsetFormatter(time.Now())
		if useColor {
			cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		return zapcore.NewConsoleEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("logging: unknown encoding %q", opts.Encoding)
	}
}

func (opts Opts) useColor() (bool, error) {
	switch opts.Color {
	case "auto", "":
		return term.IsTerminal(int(os.Stderr.Fd())), nil
	case "always", "on":
		return true, nil
	case "never", "off":
		return false, nil
	}
	return false, fmt.Errorf("logging: unknown color mode %q", opts.Color)
}

// ParseLevel maps a level name to a zap level; empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	lvl := zapcore.InfoLevel
	if s == "" {
		return lvl, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// NewCore builds a core writing to w.
func (opts Opts) NewCore(w io.Writer) (zapcore.Core, error) {
	enc, err := opts.Encoder()
	if err != nil {
		return nil, err
	}
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	return zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl)), nil
}

// NewLogger builds a logger writing to stderr.
func (opts Opts) NewLogger() (*zap.Logger, error) {
	core, err := opts.NewCore(os.Stderr)
	if err != nil {
		return nil, err
	}
	return zap.New(core), nil
}

// TimeOffsetFormatter encodes entry times as an offset from start, which
// reads better than wall clock time for a short-lived CLI.
func TimeOffsetFormatter(start time.Time) zapcore.TimeEncoder {
	return func(t time.Time, e zapcore.PrimitiveArrayEncoder) {
		diff := t.Sub(start)
		switch {
		case diff < time.Second:
			e.AppendString(fmt.Sprintf("%4dms", diff.Milliseconds()))
		case diff < 5*time.Minute:
			e.AppendString(fmt.Sprintf("%5.1fs", diff.Seconds()))
		default:
			e.AppendString(fmt.Sprintf("%5.1fm", diff.Minutes()))
		}
	}
}
