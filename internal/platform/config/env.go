package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag, so a field tagged
// `env:"GAME_PORT"` reads TENPIN_GAME_PORT.
const EnvPrefix = "TENPIN_"

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	return parse(target, env.Options{Prefix: EnvPrefix})
}

// ParseEnvFrom loads configuration from the provided environment map instead
// of the process environment.
func ParseEnvFrom(target any, environment map[string]string) error {
	return parse(target, env.Options{Prefix: EnvPrefix, Environment: environment})
}

func parse(target any, opts env.Options) error {
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
