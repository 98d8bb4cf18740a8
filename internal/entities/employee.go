package entities

import "time"

// Employee is a candidate submitted by a vendor against a job it is
// assigned to. ResumeKey is an opaque object-storage reference.
type Employee struct {
	ID          int
	FirstName   string
	LastName    string
	JobTitle    string
	ResumeKey   string
	VendorID    int
	JobID       int
	CreatedByID int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
