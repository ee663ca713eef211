package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/costar/collab"
	"github.com/katalvlaran/costar/dataset"
	"github.com/katalvlaran/costar/internal/api"
	"github.com/katalvlaran/costar/internal/config"
	"github.com/katalvlaran/costar/internal/metrics"
	"github.com/katalvlaran/costar/oracle"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the oracle over HTTP",
		Long: "Serves GET /v1/oracle/:name, /v1/component/:name, /v1/stats, /healthz\n" +
			"and /metrics.\n" +
			"With dataset.watch enabled the dataset file is reloaded on change.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	orc, err := a.loadOracle(ctx, true)
	if err != nil {
		return err
	}
	holder := oracle.NewHolder(orc)

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr: a.cfg.Server.Listen,
		Handler: api.NewRouter(&api.RouterDeps{
			Log:         a.log,
			Oracles:     holder,
			CORSOrigins: a.cfg.Server.CORSOrigins,
		}),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.WithField("addr", srv.Addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down")
		shutCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutCtx)
	})

	if a.cfg.Dataset.Watch && a.cfg.Dataset.Source == config.SourceFile {
		w := a.reloadWatcher(holder)
		g.Go(func() error { return w.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		return err
	}
	a.log.Info("goodbye")

	return nil
}

// reloadWatcher rebuilds the Oracle whenever the dataset file changes. A
// dataset that fails to parse or build leaves the previous Oracle serving.
func (a *app) reloadWatcher(holder *oracle.Holder) *dataset.Watcher {
	return &dataset.Watcher{
		Path: a.cfg.Dataset.Path,
		Log:  a.log,
		OnChange: func(groups []collab.Group) error {
			next, err := oracle.New(groups, a.cfg.Reference, oracle.WithLogger(a.log), oracle.WithMetrics(true))
			if err != nil {
				return err
			}
			prev := holder.Swap(next)
			metrics.ReloadsTotal.WithLabelValues("ok").Inc()
			a.log.WithFields(logrus.Fields{
				"nodes":          next.Stats().Nodes,
				"previous_nodes": prev.Stats().Nodes,
			}).Info("oracle swapped")

			return nil
		},
		OnError: func(error) {
			metrics.ReloadsTotal.WithLabelValues("error").Inc()
		},
	}
}
