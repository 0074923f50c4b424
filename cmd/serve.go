package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content-loop/worker"

	"github.com/spf13/cobra"
)

// serveCmd runs all configured pipelines on their intervals until a
// termination signal arrives.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run all pipelines on their configured intervals",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rt, err := newRuntime(cfg)
		if err != nil {
			return err
		}
		defer rt.Close()
		if rt.llm == nil {
			slog.Warn("no llm api key configured, generation will be skipped")
		}

		ws := make([]worker.Worker, 0, len(cfg.Pipelines))
		for _, pc := range cfg.Pipelines {
			interval, err := time.ParseDuration(pc.Interval)
			if err != nil {
				return fmt.Errorf("invalid interval for pipeline %s: %w", pc.Name, err)
			}
			ws = append(ws, worker.NewPipelineWorker(pc.Name, rt.pipelineFor(pc), interval))
		}
		mgr := worker.NewManager(ws...)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s := <-sigc
			slog.Info("received signal, shutting down", "signal", s.String())
			cancel()
		}()

		return mgr.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
