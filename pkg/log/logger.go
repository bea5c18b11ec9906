package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type LoggerType uint8

const (
	ConsoleLogger LoggerType = iota
	JSONLogger
)

var (
	Root zerolog.Logger = zerolog.Nop()
	CLI  zerolog.Logger = zerolog.Nop()
)

// Options for Logger
type Options struct {
	// Minimum level written, default Info
	LogLevel zerolog.Level
	Type     LoggerType
	// Destination, default os.Stderr
	Out io.Writer
}

func ParseLogLevel(loglevel string) (zerolog.Level, error) {
	return zerolog.ParseLevel(loglevel)
}

func ParseLoggerType(json bool) LoggerType {
	if json {
		return JSONLogger
	}
	return ConsoleLogger
}

func Init(opts Options) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	switch opts.Type {
	case ConsoleLogger:
		Root = zerolog.New(newConsoleWriter(out)).Level(opts.LogLevel).
			With().Timestamp().Logger()
	default:
		Root = zerolog.New(out).Level(opts.LogLevel).
			With().Timestamp().Logger()
	}
	CLI = Root.With().Str("component", "cli").Logger()
}

// newConsoleWriter writes uncoloured lines with an upper-case boxed level.
func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}
	cw.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	return cw
}
