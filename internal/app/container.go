// Package app wires the application dependencies together.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	dashboardApp "github.com/felixgeelhaar/stratus/internal/dashboard/application"
	"github.com/felixgeelhaar/stratus/internal/gateway"
	identityApp "github.com/felixgeelhaar/stratus/internal/identity/application"
	identityDomain "github.com/felixgeelhaar/stratus/internal/identity/domain"
	"github.com/felixgeelhaar/stratus/internal/identity/infrastructure/session"
	"github.com/felixgeelhaar/stratus/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	Gateway    *gateway.Client
	Auth       *identityApp.Service
	Controller *dashboardApp.Controller

	sessionDB *sql.DB
}

// NewContainer creates and wires all application dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	store, err := c.newSessionStore(ctx)
	if err != nil {
		return nil, err
	}

	c.Gateway = gateway.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, gateway.BreakerConfig{
		Enabled:          true,
		MaxRequests:      cfg.BreakerMaxRequests,
		Interval:         cfg.BreakerInterval,
		Timeout:          cfg.BreakerTimeout,
		FailureThreshold: cfg.BreakerFailureThreshold,
	}, logger)

	c.Auth = identityApp.NewService(c.Gateway, store, logger)
	c.Controller = dashboardApp.NewController(c.Auth, c.Gateway, logger)

	return c, nil
}

func (c *Container) newSessionStore(ctx context.Context) (identityDomain.SessionStore, error) {
	switch c.Config.SessionDriver {
	case "sqlite":
		db, err := session.OpenSQLite(ctx, c.Config.SessionPath)
		if err != nil {
			return nil, fmt.Errorf("open session database: %w", err)
		}
		c.sessionDB = db
		c.Logger.Debug("using sqlite session store", "path", c.Config.SessionPath)
		return session.NewSQLiteStore(db), nil
	default:
		c.Logger.Debug("using file session store", "path", c.Config.SessionPath)
		return session.NewFileStore(c.Config.SessionPath), nil
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.sessionDB != nil {
		if err := c.sessionDB.Close(); err != nil {
			return fmt.Errorf("close session database: %w", err)
		}
	}
	return nil
}
