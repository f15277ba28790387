package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"catalog-backend/internal/config"
	"catalog-backend/internal/infrastructure/database"

	"catalog-backend/internal/domains/author"
	authorHandler "catalog-backend/internal/domains/author/handler"
	authorRepo "catalog-backend/internal/domains/author/repository"
	authorService "catalog-backend/internal/domains/author/service"

	"catalog-backend/internal/domains/category"
	categoryHandler "catalog-backend/internal/domains/category/handler"
	categoryRepo "catalog-backend/internal/domains/category/repository"
	categoryService "catalog-backend/internal/domains/category/service"

	"catalog-backend/internal/domains/book"
	bookHandler "catalog-backend/internal/domains/book/handler"
	bookRepo "catalog-backend/internal/domains/book/repository"
	bookService "catalog-backend/internal/domains/book/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config *config.Config
	Store  *database.Store
	PG     *database.PostgresDB // nil when running on sqlite

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	AuthorRepo   author.Repository
	CategoryRepo category.Repository
	BookRepo     book.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	AuthorService   author.Service
	CategoryService category.Service
	BookService     book.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	AuthorHandler   *authorHandler.AuthorHandler
	CategoryHandler *categoryHandler.CategoryHandler
	BookHandler     *bookHandler.BookHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole graph in order:
// config, store, repositories, services, handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	log.Info().Msg("Initializing DI container")

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Info().Str("env", cfg.App.Environment).Str("driver", cfg.Database.Driver).Msg("Config loaded")

	// ========================================
	// STEP 2: OPEN STORE
	// ========================================
	store, pg, err := openStore(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			closeStore(store, pg)
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	c, err := NewWithStore(cfg, store)
	if err != nil {
		closeStore(store, pg)
		return nil, err
	}
	c.PG = pg

	log.Info().Msg("DI container initialized")
	return c, nil
}

// NewWithStore wires repositories, services and handlers on an open store.
func NewWithStore(cfg *config.Config, store *database.Store) (*Container, error) {
	c := &Container{
		Config: cfg,
		Store:  store,
	}

	c.initRepositories()

	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	c.initHandlers()
	return c, nil
}

func openStore(ctx context.Context, dbCfg config.DatabaseConfig) (*database.Store, *database.PostgresDB, error) {
	dialect, err := database.DialectFor(dbCfg.Driver)
	if err != nil {
		return nil, nil, err
	}

	if dialect.Name == database.DriverSQLite {
		db, err := database.OpenSQLite(ctx, dbCfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return database.NewStore(db, dialect), nil, nil
	}

	pg := database.NewPostgresDB(dbCfg.Postgres)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := pg.Connect(connectCtx); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pg.HealthCheck(connectCtx); err != nil {
		pg.Close()
		return nil, nil, fmt.Errorf("database health check failed: %w", err)
	}

	sqlDB, err := pg.SQLDB()
	if err != nil {
		pg.Close()
		return nil, nil, err
	}
	return database.NewStore(sqlDB, dialect), pg, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	c.AuthorRepo = authorRepo.NewSQLRepository(c.Store)
	c.CategoryRepo = categoryRepo.NewSQLRepository(c.Store)
	c.BookRepo = bookRepo.NewSQLRepository(c.Store)
}

func (c *Container) initServices() error {
	policy, err := c.Config.Validation.LengthPolicy()
	if err != nil {
		return err
	}

	c.AuthorService = authorService.NewAuthorService(
		c.AuthorRepo,
		author.NewValidator(policy),
		c.Store,
	)
	c.CategoryService = categoryService.NewCategoryService(
		c.CategoryRepo,
		category.NewValidator(policy),
		c.Store,
	)

	// ----------------------------------------
	// BOOK SERVICE
	// ----------------------------------------
	// Cross-domain: author and category repositories back the reference rules
	c.BookService = bookService.NewBookService(
		c.BookRepo,
		book.NewValidator(c.AuthorRepo, c.CategoryRepo, policy),
		c.Store,
	)

	return nil
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

// Cleanup releases the store. Called from graceful shutdown.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")
	closeStore(c.Store, c.PG)
	log.Info().Msg("Container cleanup completed")
}

// closeStore closes the *sql.DB wrapper first, then the pgx pool it sits on.
func closeStore(store *database.Store, pg *database.PostgresDB) {
	if store != nil {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close store")
		}
	}
	if pg != nil {
		pg.Close()
	}
}
