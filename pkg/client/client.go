// Package client talks to a pomoplan server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/td0m/pomoplan/pkg/brief"
	"github.com/td0m/pomoplan/pkg/plan"
	"github.com/td0m/pomoplan/pkg/task"
)

// Error is a non-2xx response. A 404 unwraps to task.ErrNotFound.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return task.ErrNotFound
	}
	return nil
}

type Client struct {
	base string
	http *http.Client
}

// New returns a client for the server at base, e.g. http://localhost:8080.
func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) Tasks(ctx context.Context) ([]task.Task, error) {
	var ts []task.Task
	err := c.do(ctx, http.MethodGet, "/tasks", nil, &ts)
	return ts, err
}

func (c *Client) CreateTask(ctx context.Context, d task.Draft) (task.Task, error) {
	var t task.Task
	err := c.do(ctx, http.MethodPost, "/tasks", d, &t)
	return t, err
}

// PatchTask sends fields as a partial update. A nil value clears the field.
func (c *Client) PatchTask(ctx context.Context, id task.ID, fields map[string]interface{}) (task.Task, error) {
	var t task.Task
	err := c.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(string(id)), fields, &t)
	return t, err
}

func (c *Client) DeleteTask(ctx context.Context, id task.ID) (task.Task, error) {
	var t task.Task
	err := c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(string(id)), nil, &t)
	return t, err
}

// WeeklyParse replaces the server's tasks with those parsed from text.
func (c *Client) WeeklyParse(ctx context.Context, text string) (brief.Result, error) {
	var res brief.Result
	err := c.do(ctx, http.MethodPost, "/ai/weekly-parse", map[string]string{"text": text}, &res)
	return res, err
}

func (c *Client) Plan(ctx context.Context) (plan.Plan, error) {
	var p plan.Plan
	err := c.do(ctx, http.MethodGet, "/plan", nil, &p)
	return p, err
}

// GeneratePlan schedules the server's tasks. Zero policy fields use the
// server's defaults.
func (c *Client) GeneratePlan(ctx context.Context, minutes int, policy plan.Policy) (plan.Plan, error) {
	body := struct {
		MinutesAvailable int `json:"minutesAvailable"`
		plan.Policy
	}{minutes, policy}
	var p plan.Plan
	err := c.do(ctx, http.MethodPost, "/plan/generate", body, &p)
	return p, err
}

func (c *Client) PutPlan(ctx context.Context, blocks []plan.Block) (plan.Plan, error) {
	var p plan.Plan
	err := c.do(ctx, http.MethodPut, "/plan", map[string][]plan.Block{"blocks": blocks}, &p)
	return p, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		bs, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(bs)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	bs, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(bs, &e) != nil || e.Error == "" {
			e.Error = strings.TrimSpace(string(bs))
		}
		return &Error{StatusCode: res.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(bs, out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	return errors.Is(err, task.ErrNotFound)
}
