// Package config loads pomoplan settings from yaml files and the environment.
package config

import (
	"time"

	"github.com/td0m/pomoplan/internal/logging"
	"github.com/td0m/pomoplan/pkg/plan"
)

type Config struct {
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Client   ClientConfig   `yaml:"client" mapstructure:"client"`
	Ollama   OllamaConfig   `yaml:"ollama" mapstructure:"ollama"`
	Pomodoro plan.Policy    `yaml:"pomodoro" mapstructure:"pomodoro"`
	Log      logging.Config `yaml:"log" mapstructure:"log"`
	Calendar CalendarConfig `yaml:"calendar" mapstructure:"calendar"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

type ClientConfig struct {
	URL string `yaml:"url" mapstructure:"url"`
	// Minutes is the budget the TUI asks for when generating a plan.
	Minutes int `yaml:"minutes" mapstructure:"minutes"`
}

type OllamaConfig struct {
	Enabled     bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint    string        `yaml:"endpoint" mapstructure:"endpoint"`
	Model       string        `yaml:"model" mapstructure:"model"`
	Temperature float64       `yaml:"temperature" mapstructure:"temperature"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

type CalendarConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Credentials string `yaml:"credentials" mapstructure:"credentials"`
	Token       string `yaml:"token" mapstructure:"token"`
}
