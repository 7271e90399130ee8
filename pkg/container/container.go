package container

import (
	"context"
	"fmt"
	"log"
	"time"

	gographql "github.com/graph-gophers/graphql-go"

	"library-backend/internal/config"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"

	"library-backend/internal/domains/author"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"
	"library-backend/internal/domains/book"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/user"
	userRepo "library-backend/internal/domains/user/repository"
	userService "library-backend/internal/domains/user/service"

	"library-backend/internal/graphql"
)

// Container holds the full dependency graph. Initialization order matters:
// config → infrastructure → repositories → services → schema.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AuthorRepo author.Repository
	BookRepo   book.Repository
	UserRepo   user.Repository

	AuthorService author.Service
	BookService   book.Service
	UserService   user.Service

	Schema *gographql.Schema
}

// NewContainer builds and initializes the whole dependency graph.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)

	// 2. Infrastructure
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	dbConfig := database.DefaultConfig()
	dbConfig.Host = cfg.Database.Host
	dbConfig.Port = cfg.Database.Port
	dbConfig.Username = cfg.Database.User
	dbConfig.Password = cfg.Database.Password
	dbConfig.DBName = cfg.Database.Database
	dbConfig.SSLMode = cfg.Database.SSLMode
	dbConfig.MaxConns = int32(cfg.Database.MaxConns)
	dbConfig.MinConns = int32(cfg.Database.MinConns)

	c.DB = database.NewPostgresDB(&dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	c.Cache = buildCache(ctx, cfg)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	// 3. Repositories
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)

	// 4. Services
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)
	c.UserService, err = userService.NewUserService(c.UserRepo, c.JWTManager, cfg.Auth.LoginPassword)
	if err != nil {
		return nil, fmt.Errorf("init user service: %w", err)
	}

	// 5. Schema
	resolver := graphql.NewResolver(c.BookService, c.AuthorService, c.UserService)
	c.Schema = graphql.NewSchema(resolver)

	log.Println("✅ Container initialized")
	return c, nil
}

// buildCache prefers Redis and degrades to the in-memory cache when Redis is
// disabled or unreachable, so the API stays up without it.
func buildCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if !cfg.Redis.Enabled {
		log.Println("[REDIS] Disabled, using in-memory cache")
		return cache.NewMemoryCache()
	}

	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		logger.Warn("redis unavailable, falling back to in-memory cache", err)
		return cache.NewMemoryCache()
	}

	return redisClient
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Warn("closing cache", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
