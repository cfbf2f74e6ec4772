// Package config loads focusdemo settings from defaults, a focuskit.yaml file, FOCUSKIT_*
// environment variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Demo names selectable with the demo key.
const (
	DemoModal = "modal"
	DemoTabs  = "tabs"
)

// Config holds the demo's settings.
type Config struct {
	Demo    string      `mapstructure:"demo"`
	Tabs    []string    `mapstructure:"tabs"`
	Leader  string      `mapstructure:"leader"`
	History int         `mapstructure:"history"`
	Log     LogConfig   `mapstructure:"log"`
	Trace   TraceConfig `mapstructure:"trace"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// TraceConfig controls focus span export.
type TraceConfig struct {
	Stdout       string `mapstructure:"stdout"` // file receiving JSON spans
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	Insecure     bool   `mapstructure:"insecure"`
	ServiceName  string `mapstructure:"service_name"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"demo":                DemoModal,
		"tabs":                []string{"Tab 1", "Tab 2", "Tab 3"},
		"leader":              "ctrl+g",
		"history":             50,
		"log.level":           "info",
		"log.file":            "",
		"trace.stdout":        "",
		"trace.otlp_endpoint": "",
		"trace.insecure":      true,
		"trace.service_name":  "focuskit",
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"demo":          "demo",
	"tab":           "tabs",
	"leader":        "leader",
	"history":       "history",
	"log-level":     "log.level",
	"log-file":      "log.file",
	"trace-stdout":  "trace.stdout",
	"otlp-endpoint": "trace.otlp_endpoint",
}

// configDir returns the per-user configuration directory.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "focuskit"), nil
}

// Load resolves the configuration. explicitPath, when non-empty, names the config file to
// read and must exist; otherwise focuskit.yaml is searched in the user config dir and the
// working directory, and a missing file is not an error. Flags of cmd that were set on the
// command line override everything else.
func Load(cmd *cobra.Command, explicitPath string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("focuskit")
	v.SetConfigType("yaml")
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	}
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("focuskit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, c.Validate()
}

// Validate checks values the demo cannot run without.
func (c Config) Validate() error {
	switch c.Demo {
	case DemoModal, DemoTabs:
	default:
		return fmt.Errorf("unknown demo %q (want %q or %q)", c.Demo, DemoModal, DemoTabs)
	}
	if len(c.Tabs) == 0 {
		return errors.New("at least one tab label is required")
	}
	if c.History < 0 {
		return fmt.Errorf("history must not be negative, got %d", c.History)
	}
	if c.Leader == "" {
		return errors.New("leader key must not be empty")
	}
	return nil
}
