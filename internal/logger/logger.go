// Package logger builds the zerolog logger the server and CLI share.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	debugLvl = "debug"
	infoLvl  = "info"
	warnLvl  = "warn"
	errorLvl = "error"
)

// New returns a logger at the given level. Output is human-readable console
// lines on stderr unless json is set; a non-empty file path appends JSON
// lines there instead.
func New(lvl string, json bool, file string) (zerolog.Logger, error) {
	var level zerolog.Level
	switch strings.ToLower(lvl) {
	case errorLvl:
		level = zerolog.ErrorLevel
	case warnLvl:
		level = zerolog.WarnLevel
	case infoLvl, "":
		level = zerolog.InfoLevel
	case debugLvl:
		level = zerolog.DebugLevel
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log level: %s", lvl)
	}

	var out io.Writer = os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("opening log file: %w", err)
		}
		out = f
	} else if !json {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
