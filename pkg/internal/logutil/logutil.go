package logutil

import (
    "fmt"
    "io"
    "os"
    "strings"
    "sync/atomic"
    "time"

    "github.com/rs/zerolog"
)

var consoleMode atomic.Bool

func init() {
    if strings.EqualFold(os.Getenv("FABRIC_LOG_FORMAT"), "console") {
        consoleMode.Store(true)
    }
}

// SetConsole switches loggers built by New between JSON and console output
// when Options.Format is empty.
func SetConsole(enabled bool) { consoleMode.Store(enabled) }

// Options configures New. Empty fields fall back to info level, JSON output
// (or console when FABRIC_LOG_FORMAT=console) and stderr.
type Options struct {
    Level  string
    Format string
    Output io.Writer
}

// New builds a zerolog logger. An unknown level is an error; an unknown
// format falls back to JSON.
func New(o Options) (zerolog.Logger, error) {
    level := zerolog.InfoLevel
    if o.Level != "" {
        l, err := zerolog.ParseLevel(strings.ToLower(o.Level))
        if err != nil { return zerolog.Nop(), fmt.Errorf("logutil: invalid level %q", o.Level) }
        level = l
    }
    out := o.Output
    if out == nil { out = os.Stderr }
    console := consoleMode.Load()
    switch strings.ToLower(o.Format) {
    case "console", "pretty":
        console = true
    case "json":
        console = false
    }
    if console {
        tty := out == os.Stderr || out == os.Stdout
        out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: !tty}
    }
    return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger { return zerolog.Nop() }

func Debugf(l *zerolog.Logger, f string, args ...any) { logf(l, zerolog.DebugLevel, f, args...) }
func Infof(l *zerolog.Logger, f string, args ...any)  { logf(l, zerolog.InfoLevel, f, args...) }
func Warnf(l *zerolog.Logger, f string, args ...any)  { logf(l, zerolog.WarnLevel, f, args...) }
func Errorf(l *zerolog.Logger, f string, args ...any) { logf(l, zerolog.ErrorLevel, f, args...) }

func logf(l *zerolog.Logger, level zerolog.Level, f string, args ...any) {
    if l == nil { return }
    l.WithLevel(level).Msgf(f, args...)
}
