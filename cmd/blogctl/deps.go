package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkpress/blog-api/internal/api"
	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
	"github.com/inkpress/blog-api/internal/core/service"
	mongostore "github.com/inkpress/blog-api/internal/infrastructure/db/mongo"
	redisstore "github.com/inkpress/blog-api/internal/infrastructure/db/redis"
	"github.com/inkpress/blog-api/internal/infrastructure/security"
	"github.com/inkpress/blog-api/internal/pkg/config"
	"github.com/inkpress/blog-api/pkg/logger"
)

// Deps contains injectable dependencies for the CLI commands.
// All fields with nil values will use their default implementations.
type Deps struct {
	// ConfigLoader reads the process configuration.
	// Default: config.Load
	ConfigLoader func(ctx context.Context) (*config.Config, error)

	// AccountServiceFactory opens the store and returns the account service
	// with a function releasing the connection.
	// Default: openAccountService
	AccountServiceFactory func(ctx context.Context, cfg *config.Config) (ports.AccountService, func(), error)
}

func (d Deps) withDefaults() Deps {
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.Load
	}
	if d.AccountServiceFactory == nil {
		d.AccountServiceFactory = openAccountService
	}
	return d
}

// connectMongo connects to the configured database and ensures its indexes.
func connectMongo(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return client, db, nil
}

func openAccountService(ctx context.Context, cfg *config.Config) (ports.AccountService, func(), error) {
	client, db, err := connectMongo(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	accounts := service.NewAccountService(
		mongostore.NewUserRepository(db),
		security.NewBcryptHasher(cfg.BcryptCost),
	)
	return accounts, func() { _ = client.Disconnect(context.Background()) }, nil
}

// buildServices wires the repositories, cache and core services. The logger
// must be initialised first.
func buildServices(cfg *config.Config, db *mongo.Database, rdb *redis.Client) api.Services {
	users := mongostore.NewUserRepository(db)
	sessionsRepo := mongostore.NewSessionRepository(db)
	posts := mongostore.NewPostRepository(db)
	comments := mongostore.NewCommentRepository(db)

	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	pages := service.NewPaginator(cfg.PageLimit)

	sessions := service.NewSessionService(users, sessionsRepo, hasher, nil, logger.With("sessions"))
	gate := service.NewGate(sessions, domain.DefaultPolicy(), logger.With("gate"))

	var cache ports.PostCache
	if rdb != nil {
		cache = redisstore.NewPostCache(rdb, cfg.PostCacheTTL)
	}

	return api.Services{
		Sessions: sessions,
		Posts:    service.NewPostService(posts, comments, users, cache, gate, pages, logger.With("posts")),
		Comments: service.NewCommentService(comments, posts, gate, pages, logger.With("comments")),
		Users:    service.NewUserService(users),
	}
}
