package repositories

import (
	"context"
	"testing"

	"github.com/staffhub/vendorlink/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CachedVendors_ServesFromCacheUntilInvalidated(t *testing.T) {
	dbCtx := newTestContext(t)
	repo := NewVendorRepository(dbCtx.DB)
	cached := NewCachedVendors(repo)

	vendor := addVendor(t, repo, "US", entities.VendorVerified)

	first, err := cached.GetByPublicID(context.Background(), vendor.PublicID)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Remove the row underneath; the cache still answers until invalidation.
	deleted, err := repo.Delete(context.Background(), vendor.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	stale, err := cached.GetByPublicID(context.Background(), vendor.PublicID)
	require.NoError(t, err)
	assert.NotNil(t, stale)

	cached.Invalidate(vendor.PublicID)

	gone, err := cached.GetByPublicID(context.Background(), vendor.PublicID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func Test_CachedVendors_MissIsNotCached(t *testing.T) {
	dbCtx := newTestContext(t)
	repo := NewVendorRepository(dbCtx.DB)
	cached := NewCachedVendors(repo)

	missing, err := cached.GetByPublicID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)

	vendor := entities.NewVendor("Late Arrival", "late@acme.test", "US", 1)
	require.NoError(t, repo.Add(context.Background(), vendor))

	found, err := cached.GetByPublicID(context.Background(), vendor.PublicID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}
