package entities

import "time"

// Job is a time-boxed staffing request scoped to a single country. The
// country is fixed at creation and drives vendor eligibility once, at
// assignment time.
type Job struct {
	ID          int
	Title       string
	Description string
	Country     string
	ExpiresAt   time.Time
	IsActive    bool
	CreatedByID int
	CreatedAt   time.Time
}

// DaysRemaining is computed at read time and never persisted.
func (j Job) DaysRemaining(now time.Time) float64 {
	return j.ExpiresAt.Sub(now).Hours() / 24
}

// JobAssignment links one vendor into the assignment set of one job.
// Rows are created only alongside the job itself.
type JobAssignment struct {
	JobID     int `gorm:"primaryKey"`
	VendorID  int `gorm:"primaryKey"`
	CreatedAt time.Time
}
