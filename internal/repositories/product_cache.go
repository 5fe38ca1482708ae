package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/musqaan/flipcart-clone/internal/models"
)

const productCacheTTL = 10 * time.Minute

// CachedProductRepository is a cache-aside decorator over a ProductRepository.
// Product detail reads are served from Redis when possible; mutations
// invalidate the cached entry. Cache failures are logged and fall through to
// the underlying repository, never surfaced to callers.
type CachedProductRepository struct {
	next  ProductRepository
	redis *redis.Client
}

// NewCachedProductRepository wraps next with a Redis cache.
func NewCachedProductRepository(next ProductRepository, client *redis.Client) *CachedProductRepository {
	return &CachedProductRepository{
		next:  next,
		redis: client,
	}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// GetAll is a pass-through: search and pagination variants make listings a
// poor fit for key-based caching.
func (r *CachedProductRepository) GetAll(filter ProductFilter) ([]models.Product, error) {
	return r.next.GetAll(filter)
}

// GetByID serves from cache when the entry is present and fresh.
func (r *CachedProductRepository) GetByID(id uint) (*models.Product, error) {
	ctx := context.Background()
	key := productCacheKey(id)

	data, err := r.redis.Get(ctx, key).Result()
	if err == nil {
		var product models.Product
		if unmarshalErr := json.Unmarshal([]byte(data), &product); unmarshalErr == nil {
			return &product, nil
		}
		// Corrupt entry; drop it and fall through to the repository.
		r.redis.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("product cache read failed for %s: %v", key, err)
	}

	product, err := r.next.GetByID(id)
	if err != nil {
		return nil, err
	}

	if payload, marshalErr := json.Marshal(product); marshalErr == nil {
		if setErr := r.redis.Set(ctx, key, payload, productCacheTTL).Err(); setErr != nil {
			log.Printf("product cache write failed for %s: %v", key, setErr)
		}
	}
	return product, nil
}

// Create is a pass-through; the new product is cached on first read.
func (r *CachedProductRepository) Create(product *models.Product) error {
	return r.next.Create(product)
}

// Update writes through and invalidates the cached entry.
func (r *CachedProductRepository) Update(product *models.Product) error {
	if err := r.next.Update(product); err != nil {
		return err
	}
	r.invalidate(product.ID)
	return nil
}

// Delete writes through and invalidates the cached entry.
func (r *CachedProductRepository) Delete(id uint) error {
	if err := r.next.Delete(id); err != nil {
		return err
	}
	r.invalidate(id)
	return nil
}

func (r *CachedProductRepository) invalidate(id uint) {
	if err := r.redis.Del(context.Background(), productCacheKey(id)).Err(); err != nil {
		log.Printf("product cache invalidation failed for %s: %v", productCacheKey(id), err)
	}
}
