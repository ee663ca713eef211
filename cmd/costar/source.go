package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/costar/dataset"
	"github.com/katalvlaran/costar/internal/config"
	"github.com/katalvlaran/costar/oracle"
)

// sourceFor maps dataset settings onto a dataset.Source.
func sourceFor(ds config.Dataset) dataset.Source {
	if ds.Source == config.SourcePostgres {
		return dataset.PostgresSource{DatabaseURL: ds.DatabaseURL.Value(), Query: ds.Query}
	}

	return dataset.FileSource{Path: ds.Path}
}

// loadOracle reads the configured dataset and builds an Oracle over it.
func (a *app) loadOracle(ctx context.Context, withMetrics bool) (*oracle.Oracle, error) {
	src := sourceFor(a.cfg.Dataset)

	start := time.Now()
	groups, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Describe(), err)
	}
	a.log.WithFields(logrus.Fields{
		"source":   src.Describe(),
		"groups":   len(groups),
		"duration": time.Since(start).String(),
	}).Info("dataset loaded")

	return oracle.New(groups, a.cfg.Reference, oracle.WithLogger(a.log), oracle.WithMetrics(withMetrics))
}
