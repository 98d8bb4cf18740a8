package repositories

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/staffhub/vendorlink/internal/entities"
	"gorm.io/gorm"
)

type Vendors struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *Vendors {
	return &Vendors{db: db}
}

func (repo *Vendors) Add(ctx context.Context, vendor *entities.Vendor) error {
	return repo.db.WithContext(ctx).Create(vendor).Error
}

func (repo *Vendors) GetByID(ctx context.Context, id int) (*entities.Vendor, error) {
	var vendor entities.Vendor
	err := repo.db.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (repo *Vendors) GetByPublicID(ctx context.Context, publicID string) (*entities.Vendor, error) {
	var vendor entities.Vendor
	err := repo.db.WithContext(ctx).First(&vendor, "public_id = ?", publicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (repo *Vendors) GetByCountry(ctx context.Context, country string) ([]entities.Vendor, error) {
	var vendors []entities.Vendor
	if err := repo.db.WithContext(ctx).Find(&vendors, "country = ?", country).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// GetEligible returns the subset of the given vendors that are verified and
// located in the given country. Candidates that do not match are simply
// absent from the result.
func (repo *Vendors) GetEligible(ctx context.Context, ids []int, country string) ([]entities.Vendor, error) {
	var vendors []entities.Vendor
	if err := repo.db.WithContext(ctx).
		Where("id IN ? AND country = ? AND status = ?", ids, country, entities.VendorVerified).
		Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// ConsumeToken atomically looks up the vendor holding a still-live token,
// moves it to the given status and clears the token. The guarded update runs
// in one transaction so that two racing calls on the same token see exactly
// one winner. Returns nil when the token is unknown, already consumed or
// expired (expiry exactly at now counts as expired).
func (repo *Vendors) ConsumeToken(ctx context.Context, token string, status entities.VendorStatus,
	now time.Time) (*entities.Vendor, error) {

	var vendor *entities.Vendor
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v entities.Vendor
		if err := tx.First(&v, "verification_token = ? AND token_expiry > ?", token, now).Error; err != nil {
			return err
		}

		res := tx.Model(&entities.Vendor{}).
			Where("id = ? AND verification_token = ?", v.ID, token).
			Updates(map[string]any{
				"status":             status,
				"verification_token": nil,
				"token_expiry":       nil,
				"updated_at":         now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		v.Status = status
		v.VerificationToken = nil
		v.TokenExpiry = nil
		v.UpdatedAt = &now
		vendor = &v
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return vendor, nil
}

// FinalizePending moves a vendor out of Pending on behalf of a privileged
// actor, clearing any outstanding token. Returns false when the vendor does
// not exist or is no longer pending.
func (repo *Vendors) FinalizePending(ctx context.Context, id int, status entities.VendorStatus,
	reason string, actorID int, now time.Time) (bool, error) {

	res := repo.db.WithContext(ctx).Model(&entities.Vendor{}).
		Where("id = ? AND status = ?", id, entities.VendorPending).
		Updates(map[string]any{
			"status":             status,
			"rejection_reason":   reason,
			"verification_token": nil,
			"token_expiry":       nil,
			"updated_at":         now,
			"updated_by_id":      actorID,
		})
	return res.RowsAffected > 0, res.Error
}

// Delete removes the vendor together with its employees and job assignments
// in one transaction. Returns false when no such vendor exists.
func (repo *Vendors) Delete(ctx context.Context, id int) (bool, error) {
	deleted := false
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.Employee{}, "vendor_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.JobAssignment{}, "vendor_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&entities.Vendor{}, "id = ?", id)
		deleted = res.RowsAffected > 0
		return res.Error
	})
	return deleted, err
}

// ClearExpiredTokens is housekeeping only; token validity is always decided
// by the expiry check at lookup time, not by this sweep.
func (repo *Vendors) ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Model(&entities.Vendor{}).
		Where("verification_token IS NOT NULL AND token_expiry <= ?", now).
		Updates(map[string]any{
			"verification_token": nil,
			"token_expiry":       nil,
		})
	return res.RowsAffected, res.Error
}
