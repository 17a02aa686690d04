// Package server exposes tasks, brief parsing and plans over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/td0m/pomoplan/pkg/brief"
	"github.com/td0m/pomoplan/pkg/plan"
	"github.com/td0m/pomoplan/pkg/task"
	"go.uber.org/zap"
)

// BriefParser turns a weekly brief into canonical tasks.
type BriefParser interface {
	Parse(ctx context.Context, text string) (brief.Result, error)
}

var _ BriefParser = &brief.Pipeline{}

type Options struct {
	Tasks  task.StoreManager
	Plans  *plan.Store
	Brief  BriefParser
	Policy plan.Policy
	Logger *zap.Logger
	Now    func() time.Time
}

// Server is the pomoplan API server
type Server struct {
	tasks  task.StoreManager
	plans  *plan.Store
	brief  BriefParser
	policy plan.Policy
	log    *zap.Logger
	now    func() time.Time
	router *gin.Engine
}

// New creates the server and registers its routes.
func New(o Options) *Server {
	s := &Server{
		tasks:  o.Tasks,
		plans:  o.Plans,
		brief:  o.Brief,
		policy: o.Policy.WithDefaults(plan.DefaultPolicy),
		log:    o.Logger,
		now:    o.Now,
	}
	if s.tasks == nil {
		s.tasks = task.NewStore()
	}
	if s.plans == nil {
		s.plans = plan.NewStore()
	}
	if s.brief == nil {
		s.brief = &brief.Pipeline{Logger: o.Logger}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}

	router := gin.New()
	router.Use(requestLogger(s.log), gin.Recovery())

	router.GET("/tasks", s.handleListTasks)
	router.POST("/tasks", s.handleCreateTask)
	router.PATCH("/tasks/:id", s.handlePatchTask)
	router.DELETE("/tasks/:id", s.handleDeleteTask)

	router.POST("/ai/weekly-parse", s.handleWeeklyParse)

	router.GET("/plan", s.handleGetPlan)
	router.PUT("/plan", s.handlePutPlan)
	router.POST("/plan/generate", s.handleGeneratePlan)

	s.router = router
	return s
}

// Handler returns the http.Handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
