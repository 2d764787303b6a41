package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpadapter "ordertaking/internal/adapters/in/http"
	"ordertaking/internal/adapters/out/acknowledgment"
	"ordertaking/internal/adapters/out/addresscheck"
	"ordertaking/internal/adapters/out/catalog"
	"ordertaking/internal/adapters/out/postgres"
	"ordertaking/internal/adapters/out/postgres/catalogrepo"
	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/jobs"
	"ordertaking/internal/pkg/cache"
)

const addressCacheTTL = 24 * time.Hour

type CompositionRoot struct {
	config         Config
	logger         *slog.Logger
	gormDB         *gorm.DB
	priceSource    ports.PriceSource
	catalog        *catalog.Catalog
	addressChecker ports.AddressChecker
	addressCache   cache.Cache
}

// NewCompositionRoot builds the long-lived collaborators. With a database
// configured the catalog schema is migrated and seeded with the default prices
// on first start.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	root := &CompositionRoot{config: config, logger: logger}

	var source ports.PriceSource = catalog.DefaultPriceSource()
	if config.UseDatabase() {
		db, err := postgres.Open(config.Database())
		if err != nil {
			return nil, err
		}
		root.gormDB = db

		repo := catalogrepo.NewGormCatalogRepository(db)
		if err = repo.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate catalog: %w", err)
		}
		defaults := catalog.DefaultPriceSource()
		seeded, err := repo.SeedIfEmpty(ctx, defaults.Standard, defaults.Promotions)
		if err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		if seeded {
			logger.InfoContext(ctx, "catalog seeded with default prices")
		}
		source = repo
	}

	root.priceSource = source
	c, err := catalog.NewCatalog(ctx, source, logger)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	root.catalog = c

	root.addressChecker = root.newAddressChecker()
	return root, nil
}

func (c *CompositionRoot) newAddressChecker() ports.AddressChecker {
	if c.config.AddressServiceURL == "" {
		c.logger.Warn("ADDRESS_SERVICE_URL is empty, addresses are not verified")
		return addresscheck.PassThroughChecker{}
	}

	var checker ports.AddressChecker = addresscheck.NewHTTPChecker(c.config.AddressServiceURL, nil)
	if c.config.RedisAddr != "" {
		c.addressCache = cache.NewRedisCache(c.config.RedisAddr, "ordertaking")
		checker = addresscheck.NewCachedChecker(
			checker,
			c.addressCache,
			addressCacheTTL,
			c.logger,
		)
	}
	return checker
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() (*commands.PlaceOrderCommandHandler, error) {
	return commands.NewPlaceOrderCommandHandler(commands.PlaceOrderDependencies{
		ProductCatalog:       c.catalog,
		AddressChecker:       c.addressChecker,
		PricingResolver:      c.catalog,
		LetterWriter:         acknowledgment.HTMLLetterWriter{},
		AcknowledgmentSender: acknowledgment.NewLogSender(c.logger),
	}, c.logger)
}

func (c *CompositionRoot) CreateGetProductPricesQueryHandler() queries.GetProductPricesQueryHandler {
	return queries.NewGetProductPricesQueryHandler(c.priceSource)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.catalog, c.config.RefreshSchedule(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpadapter.Server, error) {
	handler, err := c.CreatePlaceOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	return httpadapter.NewServer(handler, c.CreateGetProductPricesQueryHandler(), c.logger), nil
}

// Close releases the Redis client and the database connection pool, if any.
func (c *CompositionRoot) Close() error {
	var errList []error
	if c.addressCache != nil {
		if err := c.addressCache.Close(); err != nil {
			errList = append(errList, fmt.Errorf("close redis: %w", err))
		}
	}
	if c.gormDB != nil {
		sqlDB, err := c.gormDB.DB()
		if err == nil {
			err = sqlDB.Close()
		}
		if err != nil {
			errList = append(errList, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errList...)
}
