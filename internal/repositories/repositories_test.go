package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/staffhub/vendorlink/internal/entities"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *DbContext {
	t.Helper()

	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbCtx.Close() })

	require.NoError(t, dbCtx.Migrate())
	return dbCtx
}

func addVendor(t *testing.T, repo *Vendors, country string, status entities.VendorStatus) *entities.Vendor {
	t.Helper()

	vendor := entities.NewVendor("Vendor "+country, "contact@"+country+".test", country, 1)
	vendor.Status = status
	require.NoError(t, repo.Add(context.Background(), vendor))
	return vendor
}

func addVendorWithToken(t *testing.T, repo *Vendors, expiry time.Time) (*entities.Vendor, string) {
	t.Helper()

	vendor := entities.NewVendor("Tokenized", "tokenized@acme.test", "US", 1)
	token := vendor.IssueToken(time.Hour)
	expiryUTC := expiry.UTC()
	vendor.TokenExpiry = &expiryUTC
	require.NoError(t, repo.Add(context.Background(), vendor))
	return vendor, token
}
