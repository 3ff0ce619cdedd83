// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import (
	"fmt"

	"github.com/atc0005/certpath/internal/pathlog"
)

// validate verifies all Config struct fields have been provided acceptable
// values.
func (c Config) validate() error {
	if c.LeafFilename == "" {
		return fmt.Errorf("leaf certificate filename not provided")
	}

	if c.AIAEnabled && c.aiaTimeoutSeconds < 1 {
		return fmt.Errorf("invalid AIA fetch timeout provided: %d", c.aiaTimeoutSeconds)
	}

	if c.timeBudgetSeconds < 0 {
		return fmt.Errorf("invalid time budget provided: %d", c.timeBudgetSeconds)
	}

	switch c.LoggingLevel {
	case pathlog.LevelDisabled, pathlog.LevelPanic, pathlog.LevelFatal,
		pathlog.LevelError, pathlog.LevelWarn, pathlog.LevelInfo,
		pathlog.LevelDebug, pathlog.LevelTrace:
		// valid
	default:
		return fmt.Errorf("invalid log level provided: %q", c.LoggingLevel)
	}

	return nil
}
