// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Command certpath discovers a trust path from a given end-entity
// certificate to a configured set of trust anchors, optionally following
// Authority Information Access URIs when locally known certificates do not
// yield a candidate issuer.
package main

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"github.com/atc0005/go-nagios"
	"github.com/grantae/certinfo"

	"github.com/atc0005/certpath/internal/aiafetch"
	"github.com/atc0005/certpath/internal/config"
	"github.com/atc0005/certpath/internal/pathfind"
	"github.com/atc0005/certpath/internal/pathvalidate"
	"github.com/atc0005/certpath/internal/pembundle"
	"github.com/atc0005/certpath/internal/textutils"
	"github.com/atc0005/certpath/internal/x509cert"
)

func main() {
	cfg, cfgErr := config.New()
	switch {
	case errors.Is(cfgErr, config.ErrVersionRequested):
		fmt.Println(config.Version())
		return

	case cfgErr != nil:
		fmt.Fprintln(os.Stderr, "Error initializing application:", cfgErr)
		os.Exit(nagios.StateUNKNOWNExitCode)
	}

	if cfg.NagiosMode {
		runNagios(cfg)
		return
	}

	if err := run(cfg); err != nil {
		cfg.Log.Error().Err(err).Msg("certpath: run failed")
		os.Exit(1)
	}
}

// run performs discovery and prints a human-readable report to stdout.
func run(cfg *config.Config) error {
	target, err := loadLeaf(cfg.LeafFilename)
	if err != nil {
		return fmt.Errorf("loading leaf certificate: %w", err)
	}

	store, err := buildStore(cfg)
	if err != nil {
		return fmt.Errorf("seeding certificate store: %w", err)
	}

	validator, err := buildValidator(cfg)
	if err != nil {
		return fmt.Errorf("building validator: %w", err)
	}

	report, err := discover(context.Background(), cfg, target, store, validator)
	if err != nil {
		return err
	}

	printReport(cfg, report)
	return nil
}

// runNagios performs discovery and emits a single Nagios plugin output line
// via go-nagios, the way cmd/check_cert reports to the Nagios console.
func runNagios(cfg *config.Config) {
	plugin := nagios.NewPlugin()
	plugin.SetErrorsLabel("DISCOVERY ERRORS")
	plugin.SetDetailedInfoLabel("PATH DISCOVERY REPORT")
	defer plugin.ReturnCheckResults()

	target, err := loadLeaf(cfg.LeafFilename)
	if err != nil {
		plugin.AddError(err)
		plugin.ServiceOutput = fmt.Sprintf("%s: failed to load leaf certificate", nagios.StateUNKNOWNLabel)
		plugin.ExitStatusCode = nagios.StateUNKNOWNExitCode
		return
	}

	store, err := buildStore(cfg)
	if err != nil {
		plugin.AddError(err)
		plugin.ServiceOutput = fmt.Sprintf("%s: failed to seed certificate store", nagios.StateUNKNOWNLabel)
		plugin.ExitStatusCode = nagios.StateUNKNOWNExitCode
		return
	}

	validator, err := buildValidator(cfg)
	if err != nil {
		plugin.AddError(err)
		plugin.ServiceOutput = fmt.Sprintf("%s: failed to build validator", nagios.StateUNKNOWNLabel)
		plugin.ExitStatusCode = nagios.StateUNKNOWNExitCode
		return
	}

	report, err := discover(context.Background(), cfg, target, store, validator)
	if err != nil {
		plugin.AddError(err)
		plugin.ServiceOutput = fmt.Sprintf("%s: %v", nagios.StateCRITICALLabel, err)
		plugin.ExitStatusCode = nagios.StateCRITICALExitCode
		return
	}

	if report.Found == nil {
		plugin.ServiceOutput = fmt.Sprintf(
			"%s: no trust path found (%d candidate chains rejected)",
			nagios.StateCRITICALLabel,
			len(report.Failures),
		)
		for _, failure := range report.Failures {
			plugin.AddError(errors.New(failure.Reason))
		}
		plugin.ExitStatusCode = nagios.StateCRITICALExitCode
		return
	}

	plugin.ServiceOutput = fmt.Sprintf(
		"%s: trust path found (%d certificates, %s)",
		nagios.StateOKLabel,
		len(report.Found.Path),
		report.Duration,
	)
	plugin.ExitStatusCode = nagios.StateOKExitCode
}

func loadLeaf(filename string) (pathfind.Certificate, error) {
	certs, err := pembundle.LoadAsCertificates(filename)
	if err != nil {
		return nil, err
	}
	return certs[0], nil
}

func buildStore(cfg *config.Config) (*pathfind.CertificateStore, error) {
	policy := pathfind.FilterSelfSigned
	if cfg.KeepSelfSigned {
		policy = pathfind.KeepSelfSigned
	}

	if cfg.BundleFilename == "" {
		return pathfind.NewCertificateStore(policy), nil
	}

	seed, err := pembundle.LoadAsCertificates(cfg.BundleFilename)
	if err != nil {
		return nil, err
	}
	return pathfind.NewCertificateStoreFromSeed(seed, policy), nil
}

func buildValidator(cfg *config.Config) (*pathvalidate.Validator, error) {
	if cfg.RootsFilename == "" {
		return pathvalidate.New(x509.NewCertPool()), nil
	}

	roots, err := pembundle.LoadAsPool(cfg.RootsFilename)
	if err != nil {
		return nil, err
	}
	return pathvalidate.New(roots), nil
}

func discover(ctx context.Context, cfg *config.Config, target pathfind.Certificate, store *pathfind.CertificateStore, validator *pathvalidate.Validator) (*pathfind.Report, error) {
	aiaCfg := pathfind.AIAConfig{Enabled: cfg.AIAEnabled}
	if cfg.AIAEnabled {
		aiaCfg.Fetcher = aiafetch.New(aiafetch.Config{
			Timeout: cfg.AIATimeout(),
			Logger:  cfg.Log,
		})
		aiaCfg.FetchTimeout = cfg.AIATimeout()
	}

	return pathfind.Find(ctx, target, pathfind.Config{
		Store:      store,
		Validator:  validator,
		AIA:        aiaCfg,
		TimeBudget: cfg.TimeBudget(),
		Logger:     cfg.Log,
	})
}

func printReport(cfg *config.Config, report *pathfind.Report) {
	if report.Found == nil {
		textutils.PrintHeader("NO TRUST PATH FOUND")
		fmt.Printf("Search duration: %s\n", report.Duration)
		fmt.Printf("Candidate chains rejected: %d\n\n", len(report.Failures))
		for i, failure := range report.Failures {
			fmt.Printf("  %d. %s (%d certificates)\n", i+1, failure.Reason, len(failure.Chain))
		}
		return
	}

	textutils.PrintHeader("TRUST PATH FOUND")
	fmt.Printf("Search duration: %s\n\n", report.Duration)

	for i, cert := range report.Found.Path {
		wrapped, ok := cert.(x509cert.Certificate)
		if !ok {
			continue
		}
		x := wrapped.Unwrap()
		fmt.Printf("  %d. %s  (via %s)\n", i, x.Subject.CommonName, report.Found.OriginTrace[i])

		if cfg.EmitCertText {
			text, err := certinfo.CertificateText(x)
			if err != nil {
				cfg.Log.Warn().Err(err).Msg("certpath: failed to render certificate text")
				continue
			}
			fmt.Println(text)
		}
	}
}
