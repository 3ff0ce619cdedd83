// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

const myAppName string = "certpath"
const myAppURL string = "https://github.com/atc0005/certpath"

const (
	defaultLeafFilename      string = ""
	defaultBundleFilename    string = ""
	defaultRootsFilename     string = ""
	defaultAIAEnabled        bool   = true
	defaultAIATimeoutSeconds int    = 10
	defaultTimeBudgetSeconds int    = 30
	defaultKeepSelfSigned    bool   = false
	defaultLogLevel          string = "info"
	defaultEmitCertText      bool   = false
	defaultNagiosMode        bool   = false
	defaultDisplayVersion    bool   = false
)

const (
	leafFilenameFlagHelp   string = "Fully-qualified path to a PEM formatted file containing the end-entity certificate to discover a trust path for."
	bundleFilenameFlagHelp string = "Fully-qualified path to a PEM formatted bundle of additional certificates to seed the discovery engine's certificate store with (e.g., locally cached intermediates)."
	rootsFilenameFlagHelp  string = "Fully-qualified path to a PEM formatted bundle of trust anchors. The terminal certificate of an accepted path must chain to one of these. Defaults to none, which rejects every path."
	aiaEnabledFlagHelp     string = "Whether to follow Authority Information Access caIssuers URIs when the certificate store alone does not yield a candidate issuer."
	aiaTimeoutFlagHelp     string = "Timeout in seconds allowed for a single Authority Information Access fetch."
	timeBudgetFlagHelp     string = "Overall time budget in seconds for the path discovery search. Zero means unlimited."
	keepSelfSignedFlagHelp string = "Whether to retain self-signed certificates encountered while seeding or fetching, instead of filtering them out of the store."
	logLevelFlagHelp       string = "Sets log level."
	emitCertTextFlagHelp   string = "Toggles emission of the accepted chain's certificates in an OpenSSL-inspired text format. This output is disabled by default."
	nagiosFlagHelp         string = "Emit a single Nagios plugin output line and exit with a Nagios-compatible status code instead of a human-readable report."
	versionFlagHelp        string = "Whether to display application version and then immediately exit application."
)
