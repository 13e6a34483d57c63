package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cherryprincess/shopping-cart-APP/driver"
	"github.com/cherryprincess/shopping-cart-APP/models"
)

const (
	listProductsSQL = `SELECT id, name, price::text FROM products ORDER BY position, id`
	getProductSQL   = `SELECT id, name, price::text FROM products WHERE id = $1`

	productsCacheKey = "catalog:products"
)

// Cache is the cache-aside store used by the Postgres catalog.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

var _ Repository = (*postgresRepository)(nil)

type postgresRepository struct {
	tm       *driver.TransactionManager
	cache    Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewPostgresRepository reads the catalog from the products table
// (id bigint, name text, price numeric, position int). cache may be nil.
func NewPostgresRepository(tm *driver.TransactionManager, cache Cache, cacheTTL time.Duration, logger *zap.Logger) Repository {
	return &postgresRepository{
		tm:       tm,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (r *postgresRepository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	// 嘗試從快取中獲取
	if r.cache != nil {
		found, err := r.cache.Get(ctx, productsCacheKey, &products)
		if err != nil {
			r.logger.Warn("Failed to get products from cache", zap.Error(err))
		}
		if found {
			return products, nil
		}
	}

	err := r.tm.ExecuteReadOnlyTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, listProductsSQL)
		if err != nil {
			return err
		}
		products, err = pgx.CollectRows(rows, scanProduct)
		return err
	})
	if err != nil {
		r.logger.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if err = Validate(products); err != nil {
		return nil, err
	}

	// 更新快取
	if r.cache != nil {
		if err = r.cache.Set(ctx, productsCacheKey, products, r.cacheTTL); err != nil {
			r.logger.Warn("Failed to cache products", zap.Error(err))
		}
	}

	return products, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uint64) (*models.Product, error) {
	cacheKey := productCacheKey(id)
	var product models.Product

	// 嘗試從快取中獲取
	if r.cache != nil {
		found, err := r.cache.Get(ctx, cacheKey, &product)
		if err != nil {
			r.logger.Warn("Failed to get product from cache", zap.Uint64("product_id", id), zap.Error(err))
		}
		if found {
			return &product, nil
		}
	}

	err := r.tm.ExecuteReadOnlyTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, getProductSQL, int64(id))
		if err != nil {
			return err
		}
		product, err = pgx.CollectExactlyOneRow(rows, scanProduct)
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get product", zap.Uint64("product_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	// 更新快取
	if r.cache != nil {
		if err = r.cache.Set(ctx, cacheKey, product, r.cacheTTL); err != nil {
			r.logger.Warn("Failed to cache product", zap.Uint64("product_id", id), zap.Error(err))
		}
	}

	return &product, nil
}

func scanProduct(row pgx.CollectableRow) (models.Product, error) {
	var (
		id    int64
		name  string
		price string
	)
	if err := row.Scan(&id, &name, &price); err != nil {
		return models.Product{}, err
	}

	d, err := decimal.NewFromString(price)
	if err != nil {
		return models.Product{}, fmt.Errorf("product %d: invalid price %q: %w", id, price, err)
	}

	return models.Product{ID: uint64(id), Name: name, Price: d}, nil
}

func productCacheKey(id uint64) string {
	return fmt.Sprintf("catalog:product:%d", id)
}
