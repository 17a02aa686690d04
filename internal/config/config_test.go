package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/td0m/pomoplan/pkg/plan"
)

func TestLoad_Defaults(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "empty.yaml")
	is.NoErr(os.WriteFile(path, []byte("{}\n"), 0600))

	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(cfg.Server.Addr, ":8080")
	is.Equal(cfg.Ollama.Endpoint, "http://localhost:11434")
	is.Equal(cfg.Ollama.Model, "llama3.1")
	is.Equal(cfg.Ollama.Timeout, 20*time.Second)
	is.Equal(cfg.Pomodoro, plan.DefaultPolicy)
	is.Equal(cfg.Calendar.Name, "Pomodoro")
}

func TestLoad_FileAndEnv(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "pomoplan.yaml")
	is.NoErr(os.WriteFile(path, []byte(`
server:
  addr: ":9090"
ollama:
  model: mistral
  timeout: 5s
pomodoro:
  work: 50
  long_every: 2
`), 0600))
	t.Setenv("POMOPLAN_OLLAMA_MODEL", "qwen2.5")
	t.Setenv("POMOPLAN_POMODORO_SHORT", "10")

	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(cfg.Server.Addr, ":9090")
	is.Equal(cfg.Ollama.Model, "qwen2.5")
	is.Equal(cfg.Ollama.Timeout, 5*time.Second)
	is.Equal(cfg.Pomodoro, plan.Policy{Work: 50, Short: 10, Long: 15, LongEvery: 2})
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	is := is.New(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	is.True(err != nil)
}

func TestWriteDefault(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	is.NoErr(WriteDefault(path))
	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(cfg.Pomodoro, plan.DefaultPolicy)
	is.Equal(cfg.Ollama.Timeout, 20*time.Second)

	is.True(WriteDefault(path) != nil)
}
