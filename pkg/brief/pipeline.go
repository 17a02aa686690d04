// Package brief derives tasks from a free-text weekly brief.
//
// The AI path asks an oracle for structured JSON; the heuristic path uses
// lexical rules and always succeeds. Both feed the same normalizer, and the
// Pipeline reports which one produced the result.
package brief

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/td0m/pomoplan/pkg/task"
	"go.uber.org/zap"
)

type Source string

const (
	SourceOllama    Source = "ollama"
	SourceHeuristic Source = "heuristic"
)

// Parser extracts drafts from a brief.
type Parser interface {
	Parse(ctx context.Context, text string) ([]task.Draft, error)
}

var _ Parser = AI{}

// Result is the outcome of parsing a brief. Warning is set whenever the
// heuristic fallback ran or drafts were dropped.
type Result struct {
	Source  Source      `json:"source"`
	Tasks   []task.Task `json:"tasks"`
	Warning string      `json:"warning,omitempty"`
}

// Pipeline tries Primary first and falls back to Fallback on any failure.
type Pipeline struct {
	// Primary may be nil, in which case only the heuristic runs.
	Primary  Parser
	Fallback Heuristic
	Logger   *zap.Logger
	Now      func() time.Time
}

func (p *Pipeline) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// Parse runs the brief through the primary parser, then the heuristic parser
// if the primary failed, and normalizes the drafts.
func (p *Pipeline) Parse(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, &task.ValidationError{Field: "text", Reason: "must not be blank"}
	}
	now := p.now()
	log := p.logger()

	var reason string
	if p.Primary == nil {
		reason = "oracle disabled"
	} else {
		drafts, err := p.Primary.Parse(ctx, text)
		if err == nil {
			tasks, nerr := task.NormalizeAll(drafts, now)
			if len(tasks) > 0 {
				res := Result{Source: SourceOllama, Tasks: tasks}
				if nerr != nil {
					res.Warning = fmt.Sprintf("dropped oracle items: %v", nerr)
				}
				log.Info("brief parsed", zap.String("source", string(res.Source)), zap.Int("tasks", len(tasks)))
				return res, nil
			}
			err = oracleErr("no usable tasks", nerr)
		}
		reason = err.Error()
		var oerr *OracleError
		if !errors.As(err, &oerr) {
			reason = oracleErr("parse failed", err).Error()
		}
		log.Warn("oracle failed, falling back to heuristic parser", zap.String("reason", reason))
	}

	fallback := p.Fallback
	if fallback.Now == nil {
		fallback.Now = func() time.Time { return now }
	}
	tasks, nerr := task.NormalizeAll(fallback.Parse(text), now)
	warning := "heuristic parser used: " + reason
	if nerr != nil {
		warning += fmt.Sprintf("; dropped items: %v", nerr)
	}
	log.Info("brief parsed", zap.String("source", string(SourceHeuristic)), zap.Int("tasks", len(tasks)))
	return Result{Source: SourceHeuristic, Tasks: tasks, Warning: warning}, nil
}
