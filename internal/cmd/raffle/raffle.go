// Package raffle parses raffle service flags and launches the service.
package raffle

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/raffle/internal/platform/cmd"
	server "github.com/louisbranch/raffle/internal/services/raffle/app"
)

// Config holds raffle command configuration.
type Config struct {
	Port int `env:"RAFFLE_PORT" envDefault:"8070"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The raffle gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the raffle gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRaffle, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
