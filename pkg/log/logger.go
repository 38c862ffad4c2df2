// Package log provides structured logging for search runs.
//
// The harness logs through the standard log/slog front end. Two setups are
// offered: a JSON handler for machine consumption and a console handler
// (backed by zerolog's ConsoleWriter) for interactive runs of the driver.
// Both are wrapped so that cockroachdb/errors stack traces attached to an
// "error" attribute are rendered as a separate "stacktrace" attribute, and
// both route library warnings raised through errors.Warn into the installed
// logger.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rs/zerolog"

	scierrors "github.com/scitune/scitune/pkg/errors"
)

// SetupLogger installs a JSON slog handler as the process default.
func SetupLogger(loglevel string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	})
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
	routeWarnings()
}

// SetupConsoleLogger installs a human-readable handler writing to w.
// It routes slog records through zerolog's ConsoleWriter so interactive
// runs get the familiar colored, single-line progress output.
func SetupConsoleLogger(w io.Writer, loglevel string) {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	handler := slog.NewJSONHandler(console, &slog.HandlerOptions{
		Level: ToLogLevel(loglevel),
		// ConsoleWriter parses zerolog's field names and level spellings.
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.TimeKey:
				attr.Key = zerolog.TimestampFieldName
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   zerolog.LevelFieldName,
					Value: slog.StringValue(strings.ToLower(attr.Value.String())),
				}
			case slog.MessageKey:
				attr.Key = zerolog.MessageFieldName
			}
			return attr
		},
	})
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
	routeWarnings()
}

// routeWarnings forwards errors.Warn calls to the default slog logger so
// library warnings land in the same stream as everything else.
func routeWarnings() {
	scierrors.SetZerologWarnFunc(func(warning error) {
		slog.Warn("warning raised", ErrAttr(warning))
	})
}

// ToLogLevel maps a level name to its slog level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
