package repositories

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/staffhub/vendorlink/internal/entities"
)

type publicVendorRepository interface {
	GetByPublicID(ctx context.Context, publicID string) (*entities.Vendor, error)
}

// CachedVendors caches public-id lookups, the hottest read on the employee
// intake path. Entries are invalidated on vendor deletion and otherwise age
// out on their own.
type CachedVendors struct {
	repo  publicVendorRepository
	cache *gocache.Cache
}

func NewCachedVendors(repo publicVendorRepository) *CachedVendors {
	return &CachedVendors{repo: repo, cache: gocache.New(5*time.Minute, 10*time.Minute)}
}

func (c *CachedVendors) GetByPublicID(ctx context.Context, publicID string) (*entities.Vendor, error) {
	if value, found := c.cache.Get(publicID); found {
		return value.(*entities.Vendor), nil
	}

	vendor, err := c.repo.GetByPublicID(ctx, publicID)
	if vendor != nil && err == nil {
		if err = c.cache.Add(publicID, vendor, gocache.DefaultExpiration); err != nil {
			return vendor, err
		}
	}

	return vendor, err
}

func (c *CachedVendors) Invalidate(publicID string) {
	c.cache.Delete(publicID)
}
