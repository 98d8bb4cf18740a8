package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/staffhub/vendorlink/internal/entities"
	"github.com/staffhub/vendorlink/internal/metrics"
)

type assignmentChecker interface {
	IsVendorAssigned(ctx context.Context, jobID int, vendorID int) (bool, error)
}

type employeeRepository interface {
	Add(ctx context.Context, employee *entities.Employee) error
	GetByJob(ctx context.Context, jobID int) ([]entities.Employee, error)
	GetByJobForVendor(ctx context.Context, jobID int, vendorID int) ([]entities.Employee, error)
	GetByIDForVendor(ctx context.Context, id int, vendorID int) (*entities.Employee, error)
}

type SubmitEmployeeRequest struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	JobTitle  string
	ResumeKey string
	JobID     int `validate:"required"`
}

// EmployeeIntake gates employee submissions: only a vendor that is a member
// of the job's assignment set may write, and the check runs before any
// payload validation or persistence.
type EmployeeIntake struct {
	resolver    vendorResolver
	assignments assignmentChecker
	employees   employeeRepository
	validate    *validator.Validate
}

func NewEmployeeIntake(resolver vendorResolver, assignments assignmentChecker,
	employees employeeRepository) *EmployeeIntake {

	return &EmployeeIntake{
		resolver:    resolver,
		assignments: assignments,
		employees:   employees,
		validate:    validator.New(),
	}
}

// SubmitEmployee creates the employee record bound to the vendor and job.
// Failures deny by default and never report whether the job itself exists.
func (s *EmployeeIntake) SubmitEmployee(ctx context.Context, jobID int, vendorPublicID string,
	actorID int, req SubmitEmployeeRequest) (*entities.Employee, error) {

	vendor, err := s.resolver.GetByPublicID(ctx, vendorPublicID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve vendor")
	}
	if vendor == nil {
		metrics.IntakeDenialsCounter.WithLabelValues("vendor_not_found").Inc()
		return nil, ErrVendorNotFound
	}

	assigned, err := s.assignments.IsVendorAssigned(ctx, jobID, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check assignment")
	}
	if !assigned {
		metrics.IntakeDenialsCounter.WithLabelValues("not_assigned").Inc()
		return nil, ErrNotAssigned
	}

	if err = s.validate.Struct(req); err != nil {
		metrics.IntakeDenialsCounter.WithLabelValues("validation").Inc()
		return nil, newValidationError("%v", err)
	}
	if req.JobID != jobID {
		metrics.IntakeDenialsCounter.WithLabelValues("validation").Inc()
		return nil, newValidationError("payload job id %v does not match target job %v", req.JobID, jobID)
	}

	employee := &entities.Employee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		JobTitle:    req.JobTitle,
		ResumeKey:   req.ResumeKey,
		VendorID:    vendor.ID,
		JobID:       jobID,
		CreatedByID: actorID,
	}
	if err = s.employees.Add(ctx, employee); err != nil {
		return nil, errors.Wrap(err, "failed to create employee")
	}
	return employee, nil
}

// GetEmployee returns one employee scoped to the owning vendor.
func (s *EmployeeIntake) GetEmployee(ctx context.Context, employeeID int,
	vendorPublicID string) (*entities.Employee, error) {

	vendor, err := s.resolver.GetByPublicID(ctx, vendorPublicID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve vendor")
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	employee, err := s.employees.GetByIDForVendor(ctx, employeeID, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load employee")
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

// ListForJobAsVendor returns the calling vendor's own submissions for a job.
func (s *EmployeeIntake) ListForJobAsVendor(ctx context.Context, jobID int,
	vendorPublicID string) ([]entities.Employee, error) {

	vendor, err := s.resolver.GetByPublicID(ctx, vendorPublicID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve vendor")
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	employees, err := s.employees.GetByJobForVendor(ctx, jobID, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}
	return employees, nil
}

// ListForJob is the leadership view over every submission for a job.
func (s *EmployeeIntake) ListForJob(ctx context.Context, jobID int) ([]entities.Employee, error) {
	employees, err := s.employees.GetByJob(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}
	return employees, nil
}
