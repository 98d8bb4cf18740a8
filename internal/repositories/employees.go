package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/staffhub/vendorlink/internal/entities"
	"gorm.io/gorm"
)

type Employees struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *Employees {
	return &Employees{db: db}
}

func (repo *Employees) Add(ctx context.Context, employee *entities.Employee) error {
	return repo.db.WithContext(ctx).Create(employee).Error
}

func (repo *Employees) GetByJob(ctx context.Context, jobID int) ([]entities.Employee, error) {
	var employees []entities.Employee
	if err := repo.db.WithContext(ctx).Find(&employees, "job_id = ?", jobID).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (repo *Employees) GetByJobForVendor(ctx context.Context, jobID int, vendorID int) ([]entities.Employee, error) {
	var employees []entities.Employee
	if err := repo.db.WithContext(ctx).
		Find(&employees, "job_id = ? AND vendor_id = ?", jobID, vendorID).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (repo *Employees) GetByIDForVendor(ctx context.Context, id int, vendorID int) (*entities.Employee, error) {
	var employee entities.Employee
	err := repo.db.WithContext(ctx).First(&employee, "id = ? AND vendor_id = ?", id, vendorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (repo *Employees) GetByVendor(ctx context.Context, vendorID int) ([]entities.Employee, error) {
	var employees []entities.Employee
	if err := repo.db.WithContext(ctx).Find(&employees, "vendor_id = ?", vendorID).Error; err != nil {
		return nil, err
	}
	return employees, nil
}
