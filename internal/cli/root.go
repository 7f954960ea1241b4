// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/projectatlas/internal/config"
	"github.com/tomtom215/projectatlas/internal/logging"
)

// RootOptions holds flags shared by every command. Empty dataset flags
// keep the value from config.yaml or the environment.
type RootOptions struct {
	ConfigPath       string
	ProjectPath      string
	OrganizationPath string
	Engine           string
	Encoding         string
	Verbose          bool

	cfg *config.Config
}

// NewRootCommand creates the atlas command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "atlas",
		Short: "Project Atlas - map and rank registry projects",
		Long: `Run the Project Atlas pipeline against the registry CSV files without
starting the HTTP server. Results are written to stdout as JSON or GeoJSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.ProjectPath, "projects", "", "project CSV file")
	cmd.PersistentFlags().StringVar(&opts.OrganizationPath, "organizations", "", "organization CSV file")
	cmd.PersistentFlags().StringVar(&opts.Engine, "engine", "", "dataset engine (duckdb|csv)")
	cmd.PersistentFlags().StringVar(&opts.Encoding, "encoding", "", "file encoding (utf-8|latin-1|windows-1252)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewOptionsCommand(opts))

	return cmd
}

// load resolves configuration and applies flag overrides. Logs go to
// stderr so stdout stays machine-readable.
func (o *RootOptions) load() error {
	cfg, err := config.LoadFromPath(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}

	if o.ProjectPath != "" {
		cfg.Dataset.ProjectPath = o.ProjectPath
	}
	if o.OrganizationPath != "" {
		cfg.Dataset.OrganizationPath = o.OrganizationPath
	}
	if o.Engine != "" {
		cfg.Dataset.Engine = o.Engine
	}
	if o.Encoding != "" {
		cfg.Dataset.Encoding = o.Encoding
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	logCfg := cfg.Logging.ToLoggingConfig()
	logCfg.Output = os.Stderr
	logCfg.Format = "console"
	logCfg.Level = "warn"
	if o.Verbose {
		logCfg.Level = "debug"
	}
	logging.Init(logCfg)

	o.cfg = cfg
	return nil
}
