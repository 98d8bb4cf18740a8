package repositories

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/staffhub/vendorlink/internal/entities"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

// CreateWithAssignments persists the job row and one assignment row per
// vendor in a single transaction. A job never exists without assignments.
func (repo *Jobs) CreateWithAssignments(ctx context.Context, job *entities.Job, vendorIDs []int) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return err
		}

		assignments := lo.Map(vendorIDs, func(vendorID int, _ int) entities.JobAssignment {
			return entities.JobAssignment{JobID: job.ID, VendorID: vendorID}
		})
		return tx.Create(&assignments).Error
	})
}

func (repo *Jobs) GetByID(ctx context.Context, id int) (*entities.Job, error) {
	var job entities.Job
	err := repo.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (repo *Jobs) GetByCreator(ctx context.Context, creatorID int) ([]entities.Job, error) {
	var jobs []entities.Job
	if err := repo.db.WithContext(ctx).Find(&jobs, "created_by_id = ?", creatorID).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) GetAssignedToVendor(ctx context.Context, vendorID int) ([]entities.Job, error) {
	var jobs []entities.Job
	if err := repo.db.WithContext(ctx).
		Joins("JOIN job_assignments ON job_assignments.job_id = jobs.id").
		Where("job_assignments.vendor_id = ?", vendorID).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) IsVendorAssigned(ctx context.Context, jobID int, vendorID int) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.JobAssignment{}).
		Where("job_id = ? AND vendor_id = ?", jobID, vendorID).
		Count(&count).Error
	return count > 0, err
}

func (repo *Jobs) GetAssignments(ctx context.Context, jobID int) ([]entities.JobAssignment, error) {
	var assignments []entities.JobAssignment
	if err := repo.db.WithContext(ctx).Find(&assignments, "job_id = ?", jobID).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *Jobs) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Model(&entities.Job{}).
		Where("is_active = ? AND expires_at <= ?", true, now).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
