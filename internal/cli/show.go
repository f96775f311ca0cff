package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/dhaka-daily/internal/almanac"
	"github.com/pfrederiksen/dhaka-daily/internal/config"
)

func newShowCmd(rt env, cfg **config.Config, global *globalFlags) *cobra.Command {
	var (
		format string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print today's almanac record without sending it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat := OutputFormat(strings.ToLower(format))
			if outFormat != FormatText && outFormat != FormatJSON && outFormat != FormatICS {
				return fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'ics')", format)
			}

			opts, err := (*cfg).AlmanacOptions()
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			day, err := resolveDay(rt, date, opts)
			if err != nil {
				return err
			}

			rec, err := almanac.Build(day, opts)
			if err != nil {
				return fmt.Errorf("building almanac: %w", err)
			}

			result := newOutputResult(rec, rt.now())
			if err := WriteOutput(cmd.OutOrStdout(), result, outFormat, global.verbose); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json or ics")
	cmd.Flags().StringVar(&date, "date", "", "Use this date instead of today (YYYY-MM-DD)")
	return cmd
}
