package brief

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeOllama serves /api/generate with a fixed status and response text.
func fakeOllama(t *testing.T, status int, response string) (*httptest.Server, *ollamaGenerateRequest) {
	t.Helper()
	var got ollamaGenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: response})
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func newTestOllama(endpoint string) *Ollama {
	o := NewOllama(OllamaConfig{Endpoint: endpoint, Model: "test", Temperature: 0.2, Timeout: time.Second})
	o.client.Transport = &http.Transport{DisableKeepAlives: true}
	return o
}

func TestOllama_Complete(t *testing.T) {
	is := is.New(t)
	srv, req := fakeOllama(t, http.StatusOK, `{"tasks":[]}`)

	got, err := newTestOllama(srv.URL).Complete(context.Background(), "hello")
	is.NoErr(err)
	is.Equal(got, `{"tasks":[]}`)
	is.Equal(req.Model, "test")
	is.Equal(req.Prompt, "hello")
	is.Equal(req.Format, "json")
	is.Equal(req.Stream, false)
	is.Equal(req.Options.Temperature, 0.2)
	is.Equal(newTestOllama(srv.URL).Name(), "ollama:test")
}

func TestAI_Parse(t *testing.T) {
	is := is.New(t)
	srv, req := fakeOllama(t, http.StatusOK, `{"tasks":[
		{"title":"Write report","due":"2026-10-26","duration_min":45.0,"priority":"high","tags":["work"]},
		{"title":"Email Bob","due":null,"duration_min":null,"priority":"low","tags":[]}
	]}`)

	drafts, err := AI{Oracle: newTestOllama(srv.URL)}.Parse(context.Background(), "my week")
	is.NoErr(err)
	is.Equal(len(drafts), 2)
	is.Equal(drafts[0].Title, "Write report")
	is.Equal(*drafts[0].DurationMin, 45)
	is.Equal(*drafts[0].Due, "2026-10-26")
	is.Equal(drafts[1].DurationMin, nil)
	is.True(strings.HasSuffix(req.Prompt, "my week"))
}

func TestAI_ParseFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
	}{
		{"non-success status", http.StatusInternalServerError, `{"tasks":[]}`},
		{"not json", http.StatusOK, `Sure! Here are your tasks: ...`},
		{"wrong shape", http.StatusOK, `{"items":[{"title":"x"}]}`},
		{"wrong field type", http.StatusOK, `{"tasks":[{"title":"x","duration_min":"long"}]}`},
		{"no tasks", http.StatusOK, `{"tasks":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			srv, _ := fakeOllama(t, tt.status, tt.response)
			_, err := AI{Oracle: newTestOllama(srv.URL)}.Parse(context.Background(), "brief")
			var oerr *OracleError
			is.True(errors.As(err, &oerr))
		})
	}
}

func TestAI_TransportFailure(t *testing.T) {
	is := is.New(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := AI{Oracle: newTestOllama(url)}.Parse(context.Background(), "brief")
	var oerr *OracleError
	is.True(errors.As(err, &oerr))
}

func TestOllama_Timeout(t *testing.T) {
	is := is.New(t)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	o := NewOllama(OllamaConfig{Endpoint: srv.URL, Timeout: 50 * time.Millisecond})
	o.client.Transport = &http.Transport{DisableKeepAlives: true}
	start := time.Now()
	_, err := o.Complete(context.Background(), "slow")
	var oerr *OracleError
	is.True(errors.As(err, &oerr))
	is.True(time.Since(start) < 5*time.Second)
}

func TestOllama_IgnoresCallerCancellation(t *testing.T) {
	is := is.New(t)
	srv, _ := fakeOllama(t, http.StatusOK, `{"tasks":[{"title":"x"}]}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := newTestOllama(srv.URL).Complete(ctx, "brief")
	is.NoErr(err)
	is.Equal(got, `{"tasks":[{"title":"x"}]}`)
}
