// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package pathlog centralizes the zerolog setup shared by the path
// discovery engine and its cmd/certpath consumer, the way internal/logging
// does for the rest of this module's tooling.
package pathlog

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	// LevelDisabled silences all logging output.
	LevelDisabled string = "disabled"

	// LevelPanic logs only panic-level events.
	LevelPanic string = "panic"

	// LevelFatal logs fatal-level events and above.
	LevelFatal string = "fatal"

	// LevelError logs error-level events and above.
	LevelError string = "error"

	// LevelWarn logs warning-level events and above.
	LevelWarn string = "warn"

	// LevelInfo logs informational events and above.
	LevelInfo string = "info"

	// LevelDebug logs search-loop tracing (edge pops, expansions, AIA
	// fetches) and above.
	LevelDebug string = "debug"

	// LevelTrace logs trace-level events and above.
	LevelTrace string = "trace"
)

// levels maps the accepted level names to their zerolog.Level, built in
// init() because a package-level map literal can't reference
// zerolog's exported level constants as a const expression.
var levels = make(map[string]zerolog.Level)

func init() {
	levels[LevelDisabled] = zerolog.Disabled
	levels[LevelPanic] = zerolog.PanicLevel
	levels[LevelFatal] = zerolog.FatalLevel
	levels[LevelError] = zerolog.ErrorLevel
	levels[LevelWarn] = zerolog.WarnLevel
	levels[LevelInfo] = zerolog.InfoLevel
	levels[LevelDebug] = zerolog.DebugLevel
	levels[LevelTrace] = zerolog.TraceLevel
}

// SetGlobalLevel applies the named level globally, filtering out messages
// below it from every logger built afterward.
func SetGlobalLevel(level string) error {
	l, ok := levels[level]
	if !ok {
		return fmt.Errorf("invalid logging level %q", level)
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

// New builds a console-writer logger carrying a timestamp and a component
// field; internal/config's setupLogging passes the application name.
// Output goes to w; cmd/certpath passes os.Stderr so search tracing never
// mixes with the chain/report output it writes to stdout.
func New(w io.Writer, component string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
