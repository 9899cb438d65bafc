// Package keeper parses keeper flags and launches the upkeep poller.
package keeper

import (
	"context"
	"flag"
	"time"

	entrypoint "github.com/louisbranch/raffle/internal/platform/cmd"
	"github.com/louisbranch/raffle/internal/platform/discovery"
	keeperapp "github.com/louisbranch/raffle/internal/services/keeper/app"
)

// Config holds keeper command configuration.
type Config struct {
	Port         int           `env:"RAFFLE_KEEPER_PORT" envDefault:"8071"`
	RaffleAddr   string        `env:"RAFFLE_KEEPER_RAFFLE_ADDR"`
	PollInterval time.Duration `env:"RAFFLE_KEEPER_POLL_INTERVAL" envDefault:"15s"`
	DialTimeout  time.Duration `env:"RAFFLE_KEEPER_DIAL_TIMEOUT" envDefault:"2s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The keeper health server port")
	fs.StringVar(&cfg.RaffleAddr, "raffle-addr", cfg.RaffleAddr, "The raffle gRPC endpoint to poll")
	fs.DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "How often to check upkeep eligibility")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.RaffleAddr = discovery.OrDefaultGRPCAddr(cfg.RaffleAddr, discovery.ServiceRaffle)
	return cfg, nil
}

// Run starts the keeper upkeep poller.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceKeeper, func(context.Context) error {
		runtime, err := keeperapp.New(ctx, keeperapp.Config{
			RaffleAddr:   cfg.RaffleAddr,
			PollInterval: cfg.PollInterval,
			DialTimeout:  cfg.DialTimeout,
		}, cfg.Port)
		if err != nil {
			return err
		}
		return runtime.Run(ctx)
	})
}
