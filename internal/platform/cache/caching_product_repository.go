// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/product/usecase"
	"youthcup_backend/internal/shared/besteffort"
)

// FeaturedProductsKey is the Redis key holding the featured product list.
const FeaturedProductsKey = "featured_products"

// CachingProductRepository decorates a ProductRepository with a Redis copy
// of the featured list. Every write through it recomputes that copy.
type CachingProductRepository struct {
	inner usecase.ProductRepository
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

var _ usecase.ProductRepository = (*CachingProductRepository)(nil)

// NewCachingProductRepository decorates inner. If ttl is 0 it defaults to
// 24 hours. If key is empty it uses FeaturedProductsKey. A nil rdb turns
// the decorator into a pass-through.
func NewCachingProductRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProductRepository, key string) *CachingProductRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if key == "" {
		key = FeaturedProductsKey
	}
	return &CachingProductRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		key:   key,
	}
}

// FindFeatured reads the cached list, falling back to the database.
func (c *CachingProductRepository) FindFeatured(ctx context.Context) ([]entity.Product, error) {
	if c.rdb == nil {
		return c.inner.FindFeatured(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Product
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindFeatured(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	_ = c.store(ctx, out)
	return out, nil
}

// RefreshFeatured recomputes the featured list and overwrites the cache.
func (c *CachingProductRepository) RefreshFeatured(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	out, err := c.inner.FindFeatured(ctx)
	if err != nil {
		return err
	}
	return c.store(ctx, out)
}

func (c *CachingProductRepository) store(ctx context.Context, products []entity.Product) error {
	if products == nil {
		products = []entity.Product{}
	}
	b, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key, b, c.ttl).Err()
}

func (c *CachingProductRepository) refresh(ctx context.Context) {
	besteffort.Do(ctx, "refresh_featured_cache", c.RefreshFeatured)
}

func (c *CachingProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	return c.inner.FindAll(ctx)
}

func (c *CachingProductRepository) FindByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	return c.inner.FindByCategory(ctx, category)
}

func (c *CachingProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	return c.inner.FindByID(ctx, id)
}

func (c *CachingProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := c.inner.Create(ctx, product); err != nil {
		return err
	}
	c.refresh(ctx)
	return nil
}

func (c *CachingProductRepository) Save(ctx context.Context, product *entity.Product) error {
	if err := c.inner.Save(ctx, product); err != nil {
		return err
	}
	c.refresh(ctx)
	return nil
}

func (c *CachingProductRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.refresh(ctx)
	return nil
}
