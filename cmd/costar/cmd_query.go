package main

import (
	"github.com/spf13/cobra"
)

func newQueryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "query [name...]",
		Short: "Explain how each name connects to the reference",
		Long: "With names, answers each one and exits. Without names, prompts\n" +
			"interactively until a blank line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			orc, err := a.loadOracle(cmd.Context(), false)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return interactive(cmd.InOrStdin(), cmd.OutOrStdout(), orc)
			}
			for _, name := range args {
				ans, err := orc.AnswerQuery(name)
				if err != nil {
					return err
				}
				if err := renderAnswer(cmd.OutOrStdout(), ans); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
