// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package aiafetch

import "github.com/rs/zerolog"

// leveledLogger adapts a zerolog.Logger to retryablehttp.LeveledLogger so
// retry attempts show up tagged with the same component field as the rest
// of this module's logging, instead of retryablehttp's own stdlib logger.
type leveledLogger struct {
	log zerolog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn().Fields(keysAndValues).Msg(msg)
}
