package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/td0m/pomoplan/internal/config"
	"github.com/td0m/pomoplan/internal/server"
	"github.com/td0m/pomoplan/pkg/brief"
	"github.com/td0m/pomoplan/pkg/persist"
	"github.com/td0m/pomoplan/pkg/plan"
	"github.com/td0m/pomoplan/pkg/task"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	serveAddr     string
	serveState    string
	serveAutosave time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve tasks, brief parsing and plans over HTTP until interrupted.

With --state, tasks and the plan are loaded from the file at startup and
written back on shutdown.

Examples:
  pomoplan serve --addr :8080
  pomoplan serve --state week.json`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default server.addr)")
	serveCmd.Flags().StringVar(&serveState, "state", "", "json file to load state from and save it to on shutdown")
	serveCmd.Flags().DurationVar(&serveAutosave, "autosave", time.Minute, "interval between state saves, 0 to save only on shutdown")
}

// newPipeline builds the brief parser described by cfg.
func newPipeline(cfg *config.Config, log *zap.Logger, offline bool) *brief.Pipeline {
	p := &brief.Pipeline{Logger: log}
	if cfg.Ollama.Enabled && !offline {
		o := brief.NewOllama(brief.OllamaConfig{
			Endpoint:    cfg.Ollama.Endpoint,
			Model:       cfg.Ollama.Model,
			Temperature: cfg.Ollama.Temperature,
			Timeout:     cfg.Ollama.Timeout,
		})
		log.Debug("brief oracle enabled", zap.String("oracle", o.Name()))
		p.Primary = brief.AI{Oracle: o}
	}
	return p
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}
	if !verbose && !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	tasks := task.NewStore()
	plans := plan.NewStore()
	var state persist.Persistor
	if serveState != "" {
		state = persist.InJSON(serveState)
		snap, err := state.Load()
		if err != nil {
			return fmt.Errorf("loading state: %w", err)
		}
		if err := tasks.Replace(snap.Tasks); err != nil {
			return fmt.Errorf("loading state: %w", err)
		}
		if snap.Plan != nil {
			plans.Set(*snap.Plan)
		}
		logger.Info("state loaded", zap.String("file", serveState), zap.Int("tasks", len(snap.Tasks)))
	}

	srv := server.New(server.Options{
		Tasks:  tasks,
		Plans:  plans,
		Brief:  newPipeline(cfg, logger, false),
		Policy: cfg.Pomodoro,
		Logger: logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	save := func() error {
		p := plans.Get()
		if err := state.Save(persist.Snapshot{Tasks: tasks.List(), Plan: &p}); err != nil {
			return fmt.Errorf("saving state: %w", err)
		}
		logger.Debug("state saved", zap.String("file", serveState))
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, addr)
	})
	if state != nil && serveAutosave > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(serveAutosave)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					if err := save(); err != nil {
						return err
					}
				}
			}
		})
	}

	err := g.Wait()
	if state != nil {
		if serr := save(); serr != nil {
			return errors.Join(err, serr)
		}
		logger.Info("state saved", zap.String("file", serveState))
	}
	return err
}
