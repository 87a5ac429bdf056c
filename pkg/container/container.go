package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"whiskybase-backend/internal/config"
	infraCache "whiskybase-backend/internal/infrastructure/cache"
	"whiskybase-backend/internal/infrastructure/database"
	"whiskybase-backend/pkg/cache"

	priceHandler "whiskybase-backend/internal/domains/price/handler"
	priceRepo "whiskybase-backend/internal/domains/price/repository"
	priceService "whiskybase-backend/internal/domains/price/service"
	reviewHandler "whiskybase-backend/internal/domains/review/handler"
	reviewRepo "whiskybase-backend/internal/domains/review/repository"
	reviewService "whiskybase-backend/internal/domains/review/service"
	whiskyHandler "whiskybase-backend/internal/domains/whisky/handler"
	whiskyRepo "whiskybase-backend/internal/domains/whisky/repository"
	whiskyService "whiskybase-backend/internal/domains/whisky/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	WhiskyRepo whiskyRepo.WhiskyRepository
	PriceRepo  priceRepo.PriceRepository
	ReviewRepo reviewRepo.ReviewRepository

	WhiskyService whiskyService.ServiceInterface
	PriceService  priceService.ServiceInterface
	ReviewService reviewService.ServiceInterface

	WhiskyHandler *whiskyHandler.WhiskyHandler
	PriceHandler  *priceHandler.PriceHandler
	ReviewHandler *reviewHandler.ReviewHandler
}

// NewContainer builds the dependency graph in order: config, infrastructure,
// repositories, services, handlers. A database failure aborts startup; a
// Redis failure does not, the cache is optional.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

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
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Info().Msg("Database connected")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Redis connection failed, running without cache")
			redisCache = nil
		} else {
			log.Info().Msg("Redis connected")
		}
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("Container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.WhiskyRepo = whiskyRepo.NewPostgresRepository(pool, c.Cache)
	c.PriceRepo = priceRepo.NewPostgresRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.WhiskyService = whiskyService.NewWhiskyService(c.WhiskyRepo)
	c.PriceService = priceService.NewPriceService(c.PriceRepo)
	// The review service writes rating aggregates back through the whisky
	// repository.
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.WhiskyRepo)
}

func (c *Container) initHandlers() {
	c.WhiskyHandler = whiskyHandler.NewWhiskyHandler(c.WhiskyService)
	c.PriceHandler = priceHandler.NewPriceHandler(c.PriceService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
}

// Cleanup releases infrastructure resources. Called from the server's
// graceful shutdown path.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close Redis")
			} else {
				log.Info().Msg("Redis connections closed")
			}
		}
	}
}
