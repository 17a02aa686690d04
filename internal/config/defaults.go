package config

import (
	"path/filepath"
	"time"

	"github.com/td0m/pomoplan/internal/logging"
	"github.com/td0m/pomoplan/pkg/plan"
)

// Default returns the configuration used when no file or env var overrides it.
func Default() *Config {
	dir := Dir()
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Client: ClientConfig{URL: "http://localhost:8080", Minutes: 240},
		Ollama: OllamaConfig{
			Enabled:     true,
			Endpoint:    "http://localhost:11434",
			Model:       "llama3.1",
			Temperature: 0.2,
			Timeout:     20 * time.Second,
		},
		Pomodoro: plan.DefaultPolicy,
		Log:      logging.Config{Level: "info"},
		Calendar: CalendarConfig{
			Name:        "Pomodoro",
			Credentials: filepath.Join(dir, "credentials.json"),
			Token:       filepath.Join(dir, "token.json"),
		},
	}
}
