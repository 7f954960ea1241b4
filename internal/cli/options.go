// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package cli

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/projectatlas/internal/pipeline"
)

// NewOptionsCommand creates the options command, which lists the distinct
// filter values present in the loaded project file.
func NewOptionsCommand(rootOpts *RootOptions) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List filter values found in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := rootOpts.cfg.Dataset.OpenSource(commandContext(cmd))
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load dataset", err)
			}
			p := pipeline.New(src, pipeline.Options{TopN: rootOpts.cfg.Pipeline.TopN})
			return writeJSON(cmd.OutOrStdout(), p.FilterOptions(), pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")
	return cmd
}
