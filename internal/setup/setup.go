package setup

import (
	"github.com/ulbra-election/voter/internal/config"
	"github.com/ulbra-election/voter/internal/election"
	"github.com/ulbra-election/voter/internal/handler"
	"github.com/ulbra-election/voter/internal/logger"
	"github.com/ulbra-election/voter/internal/service"
	"github.com/ulbra-election/voter/internal/session"
	"github.com/ulbra-election/voter/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage  *pg.Storage
	Sessions service.SessionRegistry
	Handler  *handler.Handler

	cleanups []func() error
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	deps := &Dependencies{}

	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}
	deps.Storage = storage
	deps.cleanups = append(deps.cleanups, storage.Cleanup)

	if url := cfg.RedisURL(); url != "" {
		registry, err := session.NewRedis(url, cfg.SessionTTL())
		if err != nil {
			deps.Cleanup()
			return nil, err
		}
		deps.Sessions = registry
		deps.cleanups = append(deps.cleanups, registry.Close)
	} else {
		logger.Log.Warn("redis_url is empty, sessions are kept in memory and die with the process")
		deps.Sessions = session.NewMemory(cfg.SessionTTL())
	}

	oracle := election.New(cfg.Public.Election.BaseURL, cfg.Public.Election.Timeout)

	voter := service.NewVoter(storage, oracle)
	login := service.NewLogin(storage, deps.Sessions)

	deps.Handler = handler.New(voter, login)
	return deps, nil
}

// Cleanup releases everything SetupDependencies acquired, in reverse order.
func (d *Dependencies) Cleanup() {
	for i := len(d.cleanups) - 1; i >= 0; i-- {
		if err := d.cleanups[i](); err != nil {
			logger.Log.Error("cleanup failed", "error", err)
		}
	}
}
