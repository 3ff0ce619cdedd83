// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import "flag"

// handleFlagsConfig registers and parses all command-line flags accepted by
// cmd/certpath.
func (c *Config) handleFlagsConfig() {
	flag.StringVar(&c.LeafFilename, "leaf", defaultLeafFilename, leafFilenameFlagHelp)
	flag.StringVar(&c.LeafFilename, "l", defaultLeafFilename, leafFilenameFlagHelp)

	flag.StringVar(&c.BundleFilename, "bundle", defaultBundleFilename, bundleFilenameFlagHelp)
	flag.StringVar(&c.BundleFilename, "b", defaultBundleFilename, bundleFilenameFlagHelp)

	flag.StringVar(&c.RootsFilename, "roots", defaultRootsFilename, rootsFilenameFlagHelp)
	flag.StringVar(&c.RootsFilename, "r", defaultRootsFilename, rootsFilenameFlagHelp)

	flag.BoolVar(&c.AIAEnabled, "aia-enabled", defaultAIAEnabled, aiaEnabledFlagHelp)

	flag.IntVar(&c.aiaTimeoutSeconds, "aia-timeout", defaultAIATimeoutSeconds, aiaTimeoutFlagHelp)

	flag.IntVar(&c.timeBudgetSeconds, "time-budget", defaultTimeBudgetSeconds, timeBudgetFlagHelp)

	flag.BoolVar(&c.KeepSelfSigned, "keep-self-signed", defaultKeepSelfSigned, keepSelfSignedFlagHelp)

	flag.StringVar(&c.LoggingLevel, "ll", defaultLogLevel, logLevelFlagHelp)
	flag.StringVar(&c.LoggingLevel, "log-level", defaultLogLevel, logLevelFlagHelp)

	flag.BoolVar(&c.EmitCertText, "text", defaultEmitCertText, emitCertTextFlagHelp)

	flag.BoolVar(&c.NagiosMode, "nagios", defaultNagiosMode, nagiosFlagHelp)

	flag.BoolVar(&c.ShowVersion, "v", defaultDisplayVersion, versionFlagHelp)
	flag.BoolVar(&c.ShowVersion, "version", defaultDisplayVersion, versionFlagHelp)

	flag.Usage = Usage

	flag.Parse()
}
