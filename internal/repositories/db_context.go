package repositories

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/staffhub/vendorlink/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.Vendor{})
	if err != nil {
		return fmt.Errorf("failed to migrate Vendor entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Job{})
	if err != nil {
		return fmt.Errorf("failed to migrate Job entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.JobAssignment{})
	if err != nil {
		return fmt.Errorf("failed to migrate JobAssignment entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Employee{})
	if err != nil {
		return fmt.Errorf("failed to migrate Employee entity: %w", err)
	}

	// A vendor holds at most one live token, and no two vendors may share one.
	if err = c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_vendor_token " +
		"ON vendors (verification_token) WHERE verification_token IS NOT NULL;").
		Error; err != nil {
		return fmt.Errorf("failed to create token index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
