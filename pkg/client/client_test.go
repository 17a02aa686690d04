package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matryer/is"
	"github.com/td0m/pomoplan/internal/server"
	"github.com/td0m/pomoplan/pkg/brief"
	"github.com/td0m/pomoplan/pkg/plan"
	"github.com/td0m/pomoplan/pkg/task"
)

func newClient(t *testing.T) *Client {
	gin.SetMode(gin.TestMode)
	now := func() time.Time { return time.Date(2026, time.October, 20, 9, 0, 0, 0, time.UTC) }
	s := server.New(server.Options{Brief: &brief.Pipeline{Now: now}, Now: now})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return New(ts.URL + "/")
}

func TestClient_Tasks(t *testing.T) {
	is := is.New(t)
	c := newClient(t)
	ctx := context.Background()

	ts, err := c.Tasks(ctx)
	is.NoErr(err)
	is.Equal(len(ts), 0)

	created, err := c.CreateTask(ctx, task.Draft{Title: "Write report", Priority: "high"})
	is.NoErr(err)
	is.Equal(created.DurationMin, task.DefaultDuration)

	patched, err := c.PatchTask(ctx, created.ID, map[string]interface{}{"done": true, "due": "fri"})
	is.NoErr(err)
	is.True(patched.Done)
	is.Equal(*patched.Due, "2026-10-23")

	patched, err = c.PatchTask(ctx, created.ID, map[string]interface{}{"due": nil})
	is.NoErr(err)
	is.True(patched.Due == nil)

	deleted, err := c.DeleteTask(ctx, created.ID)
	is.NoErr(err)
	is.Equal(deleted.ID, created.ID)

	_, err = c.DeleteTask(ctx, created.ID)
	is.True(IsNotFound(err))
}

func TestClient_Errors(t *testing.T) {
	is := is.New(t)
	c := newClient(t)

	_, err := c.CreateTask(context.Background(), task.Draft{})
	var cerr *Error
	is.True(errors.As(err, &cerr))
	is.Equal(cerr.StatusCode, http.StatusBadRequest)
	is.True(cerr.Message != "")
	is.True(!IsNotFound(err))
}

func TestClient_Plan(t *testing.T) {
	is := is.New(t)
	c := newClient(t)
	ctx := context.Background()

	res, err := c.WeeklyParse(ctx, "Write report ~50min high\nEmail Bob ~25min low")
	is.NoErr(err)
	is.Equal(res.Source, brief.SourceHeuristic)
	is.Equal(len(res.Tasks), 2)

	p, err := c.GeneratePlan(ctx, 70, plan.Policy{})
	is.NoErr(err)
	is.Equal(len(p.Blocks), 3)
	is.Equal(p.Blocks[0].TaskID, res.Tasks[0].ID)

	p, err = c.PutPlan(ctx, p.Blocks[:1])
	is.NoErr(err)
	is.Equal(len(p.Blocks), 1)

	got, err := c.Plan(ctx)
	is.NoErr(err)
	is.Equal(got.Blocks, p.Blocks)
}
