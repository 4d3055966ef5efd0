// Package config reads the demo binary's settings from the environment.
//
//	STOREFRONT_LOG_LEVEL  debug | info | warn | error   (default info)
//	STOREFRONT_SEED_FILE  path to a seed YAML document   (default: bundled sample)
//	STOREFRONT_SCENARIO   checkout | admin | all         (default all)
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jcmexdev/topup-storefront/internal/pkg/telemetry"
)

const envPrefix = "STOREFRONT_"

type Scenario string

const (
	ScenarioCheckout Scenario = "checkout"
	ScenarioAdmin    Scenario = "admin"
	ScenarioAll      Scenario = "all"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	LogLevel slog.Level
	// SeedFile is empty when the bundled sample should be used.
	SeedFile string
	Scenario Scenario
}

type loader struct {
	env       map[string]string
	systemEnv bool
}

type Option func(*loader)

// WithEnvMap layers values over the process environment. Keys include the
// STOREFRONT_ prefix.
func WithEnvMap(env map[string]string) Option {
	return func(l *loader) {
		for k, v := range env {
			l.env[k] = v
		}
	}
}

// WithoutSystemEnv ignores the process environment entirely.
func WithoutSystemEnv() Option {
	return func(l *loader) { l.systemEnv = false }
}

func Load(opts ...Option) (Config, error) {
	l := &loader{env: map[string]string{}, systemEnv: true}
	for _, opt := range opts {
		opt(l)
	}

	levelName := l.getEnv("LOG_LEVEL", "info")
	level, ok := telemetry.ParseLevel(levelName)
	if !ok {
		return Config{}, fmt.Errorf("config: %sLOG_LEVEL %q: %w", envPrefix, levelName, ErrInvalid)
	}

	scenario := Scenario(l.getEnv("SCENARIO", string(ScenarioAll)))
	switch scenario {
	case ScenarioCheckout, ScenarioAdmin, ScenarioAll:
	default:
		return Config{}, fmt.Errorf("config: %sSCENARIO %q: %w", envPrefix, scenario, ErrInvalid)
	}

	return Config{
		LogLevel: level,
		SeedFile: l.getEnv("SEED_FILE", ""),
		Scenario: scenario,
	}, nil
}

func (l *loader) getEnv(key, fallback string) string {
	key = envPrefix + key
	if v, ok := l.env[key]; ok && v != "" {
		return v
	}
	if l.systemEnv {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return fallback
}
