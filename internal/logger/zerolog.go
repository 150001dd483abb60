package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Zerolog writes component-tagged entries through a zerolog.Logger.
type Zerolog struct {
	zl zerolog.Logger
}

// NewZerolog writes JSON lines to w.
func NewZerolog(w io.Writer, level zerolog.Level) *Zerolog {
	return &Zerolog{zl: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// New builds the process logger on stderr: JSON lines when useJSON is set,
// otherwise zerolog's console writer.
func New(levelName string, useJSON bool) (*Zerolog, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	var w io.Writer = os.Stderr
	if !useJSON {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}
	return NewZerolog(w, level), nil
}

// ParseLevel accepts debug, info, warn/warning and error.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

func (z *Zerolog) Debug(component, message string, fields map[string]interface{}) {
	write(z.zl.Debug(), component, fields).Msg(message)
}

func (z *Zerolog) Info(component, message string, fields map[string]interface{}) {
	write(z.zl.Info(), component, fields).Msg(message)
}

func (z *Zerolog) Warning(component, message string, fields map[string]interface{}) {
	write(z.zl.Warn(), component, fields).Msg(message)
}

func (z *Zerolog) Error(component string, err error, fields map[string]interface{}) {
	write(z.zl.Error(), component, fields).Err(err).Msg(component + " failed")
}

// write tags ev with the component and fields. A disabled level yields a
// nil event, which zerolog treats as a no-op.
func write(ev *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	return ev.Str("component", component).Fields(fields)
}
