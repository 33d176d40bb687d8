package config

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xraph/confy"
	"github.com/xraph/confy/sources"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML file on top of Default and applies WEAVE_* environment
// overrides. An empty path loads defaults and environment only.
//
// The file is read through a confy file source with ${VAR} expansion; viper holds
// the defaults, the environment layer and the decoding into Config.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		settings, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := v.MergeConfigMap(settings); err != nil {
			return Config{}, ErrConfigError("failed to merge config "+path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, ErrConfigError("failed to decode config", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile loads path into a throwaway confy manager and returns its settings.
func loadFile(path string) (map[string]any, error) {
	source, err := sources.NewFileSource(path, sources.FileSourceOptions{
		Name:          "weave:" + filepath.Base(path),
		Format:        "yaml",
		RequireFile:   true,
		ExpandEnvVars: true,
	})
	if err != nil {
		return nil, ErrConfigError("failed to open config "+path, err)
	}

	manager := confy.New()
	defer func() { _ = manager.Stop() }()

	if err := manager.LoadFrom(source); err != nil {
		return nil, ErrConfigError("failed to read config "+path, err)
	}
	return manager.GetAllSettings(), nil
}

// Parse decodes an inline YAML document on top of Default. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, ErrConfigError("failed to parse config", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("strict_assertions", d.StrictAssertions)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.namespace", d.Metrics.Namespace)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
}
