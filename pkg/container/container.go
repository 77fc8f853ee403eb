package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/cache"

	blogHandler "blog-backend/internal/domains/blog/handler"
	blogRepo "blog-backend/internal/domains/blog/repository"
	blogService "blog-backend/internal/domains/blog/service"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds the application's full dependency graph.
// Everything in it is a singleton for the process lifetime.
type Container struct {
	// Infrastructure layer
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache // nil when Redis is unreachable; callers must check

	// Repository layer
	BlogRepo blogRepo.BlogRepository
	UserRepo userRepo.UserRepository

	// Service layer
	BlogService blogService.ServiceInterface

	// Handler layer
	BlogHandler *blogHandler.BlogHandler
	UserHandler *userHandler.UserHandler
}

// NewContainer builds the dependency graph in order:
// config -> infrastructure -> repositories -> services -> handlers.
// Any failure other than Redis aborts startup.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	// Redis only backs rate limiting and health reporting, so a failure
	// here is logged and the API starts without it.
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if err := redisCache.Connect(context.Background()); err != nil {
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		c.Cache = redisCache
		log.Println("✅ Redis connected")
	}

	// ========================================
	// STEP 4: REPOSITORIES
	// ========================================
	c.BlogRepo = blogRepo.NewPostgresBlogRepository(db.Pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(db.Pool)

	// ========================================
	// STEP 5: SERVICES
	// ========================================
	c.BlogService = blogService.NewBlogService(c.BlogRepo)

	// ========================================
	// STEP 6: HANDLERS
	// ========================================
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.UserHandler = userHandler.NewUserHandler(c.UserRepo)

	log.Println("✅ Container initialized")
	return c, nil
}

// Cleanup releases resources on shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
