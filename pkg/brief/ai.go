package brief

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/td0m/pomoplan/pkg/task"
)

const promptTemplate = `You turn a weekly brief into a task list.
Return ONLY a JSON object of the form:
{"tasks":[{"title":string,"due":"YYYY-MM-DD" or null,"duration_min":number or null,"priority":"high"|"medium"|"low","tags":[string]}]}
Rules:
- one task per actionable item, titles short and imperative
- duration_min is the estimated effort in minutes
- tags are lowercase words without '#'
- no commentary, no markdown

Brief:
`

// AI extracts drafts by asking an Oracle. Any failure is an *OracleError;
// it does not retry or degrade on its own.
type AI struct {
	Oracle Oracle
}

// Prompt embeds text in the fixed instruction template.
func Prompt(text string) string {
	return promptTemplate + text
}

func (a AI) Parse(ctx context.Context, text string) ([]task.Draft, error) {
	raw, err := a.Oracle.Complete(ctx, Prompt(text))
	if err != nil {
		var oerr *OracleError
		if errors.As(err, &oerr) {
			return nil, err
		}
		return nil, oracleErr("completion failed", err)
	}
	return decodeEnvelope(raw)
}

type envelope struct {
	Tasks *[]oracleTask `json:"tasks"`
}

type oracleTask struct {
	Title       string   `json:"title"`
	Due         *string  `json:"due"`
	DurationMin *float64 `json:"duration_min"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
}

func decodeEnvelope(raw string) ([]task.Draft, error) {
	var env envelope
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &env); err != nil {
		return nil, oracleErr("response is not the expected JSON", err)
	}
	if env.Tasks == nil {
		return nil, oracleErr("response has no tasks field", nil)
	}
	if len(*env.Tasks) == 0 {
		return nil, oracleErr("response has no tasks", nil)
	}
	out := make([]task.Draft, 0, len(*env.Tasks))
	for _, t := range *env.Tasks {
		out = append(out, task.Draft{
			Title:       t.Title,
			Due:         t.Due,
			DurationMin: task.RoundMinutes(t.DurationMin),
			Priority:    t.Priority,
			Tags:        t.Tags,
		})
	}
	return out, nil
}
