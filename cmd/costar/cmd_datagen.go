package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/costar/builder"
	"github.com/katalvlaran/costar/dataset"
)

func newDatagenCmd(a *app) *cobra.Command {
	var (
		movies, cast, actors int
		seed                 int64
		out                  string
	)
	cmd := &cobra.Command{
		Use:   "datagen",
		Short: "Write a synthetic cast dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups, err := builder.Casts(movies, cast, actors,
				builder.WithSeed(seed),
				builder.WithReference(a.cfg.Reference),
			)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := dataset.Write(w, groups); err != nil {
				return fmt.Errorf("write dataset: %w", err)
			}

			a.log.WithFields(logrus.Fields{
				"movies": movies,
				"cast":   cast,
				"actors": actors,
				"seed":   seed,
				"out":    out,
			}).Info("dataset generated")

			return nil
		},
	}
	cmd.Flags().IntVar(&movies, "movies", 1000, "number of movies")
	cmd.Flags().IntVar(&cast, "cast", 8, "performers per movie")
	cmd.Flags().IntVar(&actors, "actors", 5000, "size of the performer pool")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&out, "out", "-", "output file, - for stdout")

	return cmd
}
