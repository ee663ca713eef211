package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newStatsCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print collaboration graph statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orc, err := a.loadOracle(cmd.Context(), false)
			if err != nil {
				return err
			}

			st := orc.Stats()
			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				return enc.Encode(st)
			case "yaml":
				enc := yaml.NewEncoder(out)
				defer enc.Close()

				return enc.Encode(st)
			default:
				return fmt.Errorf("unknown format %q: want yaml or json", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml|json")

	return cmd
}
