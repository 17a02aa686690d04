package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName  = "pomoplan"
	fileName = "config.yaml"
)

// Dir is the global configuration directory, ~/.config/pomoplan.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, ".config", appName)
}

// GlobalPath is the global configuration file.
func GlobalPath() string {
	return filepath.Join(Dir(), fileName)
}

// ProjectPath is the per-directory configuration file, which overrides the global one.
func ProjectPath() string {
	return appName + ".yaml"
}

// Load merges defaults, the global file, the project file (or explicit, when
// set) and POMOPLAN_* environment variables, in that order of precedence.
func Load(explicit string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := setDefaults(v, Default()); err != nil {
		return nil, err
	}

	paths := []string{GlobalPath(), ProjectPath()}
	if explicit != "" {
		paths = []string{explicit}
	}
	for _, path := range paths {
		if err := mergeFile(v, path); err != nil {
			if explicit == "" && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeFile(v *viper.Viper, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return v.MergeConfig(f)
}

// setDefaults registers every key of cfg so environment variables can
// override keys that no file mentions.
func setDefaults(v *viper.Viper, cfg *Config) error {
	bs, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	var tree map[string]interface{}
	if err := yaml.Unmarshal(bs, &tree); err != nil {
		return err
	}
	for key, value := range flatten("", tree) {
		v.SetDefault(key, value)
	}
	return nil
}

func flatten(prefix string, tree map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]interface{}); ok {
			for sk, sv := range flatten(key, sub) {
				out[sk] = sv
			}
			continue
		}
		out[key] = v
	}
	return out
}

// Marshal renders cfg as yaml.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteDefault writes the default configuration to path unless it exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.New(path + " already exists")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	bs, err := Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0600)
}
