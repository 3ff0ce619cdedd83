/*

This repo contains a tool for discovering a trust path from an end-entity
certificate to a configured set of trust anchors.

PROJECT HOME

See our GitHub repo (https://github.com/atc0005/certpath) for the latest
code, to file an issue or submit improvements for review and potential
inclusion into the project.

PURPOSE

Given a leaf certificate, search known and Authority Information Access
(AIA) published certificates for a chain that a configured validator
accepts, without assuming the input already forms a complete, correctly
ordered chain.

FEATURES

• depth-first path discovery across a local certificate store and AIA
caIssuers URIs

• pluggable validator; the bundled one performs standard signature and
validity-period verification against a trust anchor bundle

• optional Nagios plugin output for monitoring integration

USAGE - certpath CLI tool

    certpath x.y.z (https://github.com/atc0005/certpath)

    Usage of certpath:
    -aia-enabled
            Whether to follow Authority Information Access caIssuers URIs when the certificate store alone does not yield a candidate issuer. (default true)
    -aia-timeout int
            Timeout in seconds allowed for a single Authority Information Access fetch. (default 10)
    -b string
            Fully-qualified path to a PEM formatted bundle of additional certificates to seed the discovery engine's certificate store with (e.g., locally cached intermediates).
    -bundle string
            Fully-qualified path to a PEM formatted bundle of additional certificates to seed the discovery engine's certificate store with (e.g., locally cached intermediates).
    -keep-self-signed
            Whether to retain self-signed certificates encountered while seeding or fetching, instead of filtering them out of the store.
    -l string
            Fully-qualified path to a PEM formatted file containing the end-entity certificate to discover a trust path for.
    -leaf string
            Fully-qualified path to a PEM formatted file containing the end-entity certificate to discover a trust path for.
    -ll string
            Sets log level. (default "info")
    -log-level string
            Sets log level. (default "info")
    -nagios
            Emit a single Nagios plugin output line and exit with a Nagios-compatible status code instead of a human-readable report.
    -r string
            Fully-qualified path to a PEM formatted bundle of trust anchors. The terminal certificate of an accepted path must chain to one of these. Defaults to none, which rejects every path.
    -roots string
            Fully-qualified path to a PEM formatted bundle of trust anchors. The terminal certificate of an accepted path must chain to one of these. Defaults to none, which rejects every path.
    -text
            Toggles emission of the accepted chain's certificates in an OpenSSL-inspired text format. This output is disabled by default.
    -time-budget int
            Overall time budget in seconds for the path discovery search. Zero means unlimited. (default 30)
    -v    Whether to display application version and then immediately exit application.
    -version
            Whether to display application version and then immediately exit application.

*/
package main
