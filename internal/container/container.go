package container

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/saulo-duarte/goal-tracker/internal/config"
	"github.com/saulo-duarte/goal-tracker/internal/goal"
	"github.com/saulo-duarte/goal-tracker/internal/router"
	"github.com/saulo-duarte/goal-tracker/internal/user"
	"github.com/saulo-duarte/goal-tracker/internal/web"
)

type Container struct {
	DB            *gorm.DB
	GoalContainer *goal.Container
	UserContainer *user.UserContainer
	WebHandler    *web.Handler
	staticDir     string
}

// New connects the configured store, creates missing tables and wires every feature.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	if err := config.Connect(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	c, err := NewWithDB(config.DB, cfg.StaticDir)
	if err != nil {
		_ = config.Close(config.DB)
		return nil, err
	}
	return c, nil
}

func NewWithDB(db *gorm.DB, staticDir string) (*Container, error) {
	if err := db.AutoMigrate(&goal.Goal{}, &user.User{}); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Container{
		DB:            db,
		GoalContainer: goal.NewContainer(db),
		UserContainer: user.NewUserContainer(db),
		WebHandler:    web.NewHandler(),
		staticDir:     staticDir,
	}, nil
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		GoalHandler:     c.GoalContainer.Handler,
		GoalViewHandler: c.GoalContainer.ViewHandler,
		UserHandler:     c.UserContainer.Handler,
		WebHandler:      c.WebHandler,
		StaticDir:       c.staticDir,
		DB:              c.DB,
	})
}

func (c *Container) Close() error {
	return config.Close(c.DB)
}
