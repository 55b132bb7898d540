// Package logger is the process-wide structured logger.
//
// Call sites pass a message followed by loose arguments:
//
//	logger.Info("Server starting", "address", addr)
//	logger.Error("Failed to fetch catalog", err)
//	logger.Warn("cache miss", slog.Any("key", key))
//
// Key/value pairs become fields, errors are attached under "error" and
// anything else is collected under "args". Output is JSON unless the
// environment is "development", where a console writer is used.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Init configures the global logger for the given application environment.
func Init(environment string) {
	InitWithLevel(environment, "info")
}

// InitWithLevel configures output format from the environment and sets the
// minimum level. Unknown levels fall back to info.
func InitWithLevel(environment, level string) {
	var out io.Writer = os.Stdout
	if strings.EqualFold(environment, "development") {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	mu.Lock()
	log = zerolog.New(out).Level(lvl).With().Timestamp().Str("env", environment).Logger()
	mu.Unlock()
}

// SetOutput redirects the logger, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	log = log.Output(w)
	mu.Unlock()
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(msg string, args ...any) {
	l := current()
	write(l.Debug(), msg, args)
}

func Info(msg string, args ...any) {
	l := current()
	write(l.Info(), msg, args)
}

func Warn(msg string, args ...any) {
	l := current()
	write(l.Warn(), msg, args)
}

func Error(msg string, args ...any) {
	l := current()
	write(l.Error(), msg, args)
}

// Fatal logs and terminates the process.
func Fatal(msg string, args ...any) {
	l := current()
	write(l.Fatal(), msg, args)
}

func write(e *zerolog.Event, msg string, args []any) {
	if e == nil {
		return
	}

	var extra []any
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			e = e.Err(v)
		case slog.Attr:
			e = e.Interface(v.Key, v.Value.Any())
		case string:
			if i+1 < len(args) {
				e = e.Interface(v, args[i+1])
				i++
				continue
			}
			extra = append(extra, v)
		default:
			extra = append(extra, fmt.Sprint(v))
		}
	}
	if len(extra) > 0 {
		e = e.Interface("args", extra)
	}

	e.Msg(msg)
}
