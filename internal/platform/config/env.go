// Package config loads service configuration from RAFFLE_-prefixed
// environment variables into env-tagged structs.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from the environment. Fields without a matching
// variable keep their envDefault value.
func ParseEnv(target any) error {
	if target == nil {
		return fmt.Errorf("parse env: target is required")
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
