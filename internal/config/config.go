// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package config handles application configuration via command-line flags
// for cmd/certpath, following the flag-based Config struct pattern the
// rest of this module's tooling used.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/atc0005/certpath/internal/pathlog"
)

// Updated via Makefile builds. Setting placeholder value here so that
// something resembling a version string will be provided for non-Makefile
// builds.
var version string = "x.y.z"

// ErrVersionRequested indicates that the user requested application version
// information.
var ErrVersionRequested = errors.New("version information requested")

// Config represents the application configuration as specified via
// command-line flags.
type Config struct {
	// LeafFilename is the fully-qualified path to a PEM file containing the
	// end-entity certificate to discover a path for.
	LeafFilename string

	// BundleFilename optionally seeds the certificate store with
	// additional, already-known certificates.
	BundleFilename string

	// RootsFilename supplies the trust anchors a discovered path's
	// terminal certificate must verify against.
	RootsFilename string

	// AIAEnabled toggles Authority Information Access based discovery.
	AIAEnabled bool

	// aiaTimeoutSeconds bounds a single AIA fetch.
	aiaTimeoutSeconds int

	// timeBudgetSeconds bounds the overall search.
	timeBudgetSeconds int

	// KeepSelfSigned controls whether self-signed certificates are kept in
	// the store instead of filtered out.
	KeepSelfSigned bool

	// LoggingLevel is the supported logging level for this application.
	LoggingLevel string

	// EmitCertText controls whether the accepted chain is additionally
	// printed in an OpenSSL-inspired text format.
	EmitCertText bool

	// NagiosMode switches output to a single Nagios plugin line and a
	// Nagios-compatible exit code.
	NagiosMode bool

	// ShowVersion is a flag indicating whether the user opted to display
	// only the version string and then immediately exit the application.
	ShowVersion bool

	// Log is the zerolog Logger initialized via config.New().
	Log zerolog.Logger
}

// AIATimeout returns the configured AIA fetch timeout as a time.Duration.
func (c Config) AIATimeout() time.Duration {
	return time.Duration(c.aiaTimeoutSeconds) * time.Second
}

// TimeBudget returns the configured overall search time budget as a
// time.Duration. Zero means unlimited.
func (c Config) TimeBudget() time.Duration {
	return time.Duration(c.timeBudgetSeconds) * time.Second
}

// Usage is a custom override for the default Help text provided by the flag
// package. Here we prepend some additional metadata to the existing output.
var Usage = func() {
	fmt.Fprintln(flag.CommandLine.Output(), "\n"+Version()+"\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
	flag.PrintDefaults()
}

// Version emits application name, version and repo location.
func Version() string {
	return fmt.Sprintf("%s %s (%s)", myAppName, version, myAppURL)
}

// Branding accepts a message and returns a function that concatenates that
// message with version information. This function is intended to be called
// as a final step before application exit after any other output has
// already been emitted.
func Branding(msg string) func() string {
	return func() string {
		return strings.Join([]string{msg, Version()}, "")
	}
}

// New is a factory function that produces a new Config object based on
// user-provided flag values. It is responsible for validating
// user-provided values and initializing the logging settings used by this
// application.
func New() (*Config, error) {
	var c Config

	c.handleFlagsConfig()

	if c.ShowVersion {
		return nil, ErrVersionRequested
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := c.setupLogging(); err != nil {
		return nil, fmt.Errorf("failed to set logging configuration: %w", err)
	}

	return &c, nil
}

func (c *Config) setupLogging() error {
	c.Log = pathlog.New(os.Stderr, myAppName).With().
		Str("version", Version()).
		Str("logging_level", c.LoggingLevel).
		Str("leaf_filename", c.LeafFilename).
		Bool("aia_enabled", c.AIAEnabled).
		Logger()

	return pathlog.SetGlobalLevel(c.LoggingLevel)
}
