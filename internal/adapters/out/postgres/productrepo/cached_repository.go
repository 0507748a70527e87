package productrepo

import (
	"context"
	"time"

	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/product"
	"store/internal/core/ports"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedProductRepository serves catalog lookups from a bounded, expiring
// in-memory cache and batches every miss into one call to the wrapped
// repository. Only found products are cached; unknown ids always reach the
// database. Entries live for at most ttl, which bounds how stale a price
// can be.
type CachedProductRepository struct {
	next  ports.ProductRepository
	cache *expirable.LRU[kernel.UUID, *product.Product]
}

func NewCachedProductRepository(next ports.ProductRepository, size int, ttl time.Duration) *CachedProductRepository {
	return &CachedProductRepository{
		next:  next,
		cache: expirable.NewLRU[kernel.UUID, *product.Product](size, nil, ttl),
	}
}

func (r *CachedProductRepository) Get(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(ids))
	misses := make([]kernel.UUID, 0, len(ids))

	for _, id := range ids {
		if p, ok := r.cache.Get(id); ok {
			products = append(products, p)
			continue
		}
		misses = append(misses, id)
	}

	if len(misses) == 0 {
		return products, nil
	}

	loaded, err := r.next.Get(ctx, misses)
	if err != nil {
		return nil, err
	}

	for _, p := range loaded {
		r.cache.Add(p.ID(), p)
		products = append(products, p)
	}

	return products, nil
}

// Purge drops every cached entry, e.g. after a catalog import.
func (r *CachedProductRepository) Purge() {
	r.cache.Purge()
}

// Len reports the number of cached products.
func (r *CachedProductRepository) Len() int {
	return r.cache.Len()
}
