package api

import (
	"context"

	"github.com/staffhub/vendorlink/internal/entities"
	"github.com/staffhub/vendorlink/internal/services"
	"github.com/stretchr/testify/mock"
)

type mockLifecycle struct {
	mock.Mock
}

func (m *mockLifecycle) CreateVendor(ctx context.Context, req services.CreateVendorRequest,
	actorID int) (*entities.Vendor, error) {
	args := m.Called(ctx, req, actorID)
	vendor, _ := args.Get(0).(*entities.Vendor)
	return vendor, args.Error(1)
}

func (m *mockLifecycle) ConfirmByToken(ctx context.Context, token string, accept bool) (*entities.Vendor, error) {
	args := m.Called(ctx, token, accept)
	vendor, _ := args.Get(0).(*entities.Vendor)
	return vendor, args.Error(1)
}

func (m *mockLifecycle) AdminVerify(ctx context.Context, vendorID int, actorID int) error {
	return m.Called(ctx, vendorID, actorID).Error(0)
}

func (m *mockLifecycle) AdminReject(ctx context.Context, vendorID int, reason string, actorID int) error {
	return m.Called(ctx, vendorID, reason, actorID).Error(0)
}

func (m *mockLifecycle) DeleteVendor(ctx context.Context, vendorID int) error {
	return m.Called(ctx, vendorID).Error(0)
}

func (m *mockLifecycle) GetVendor(ctx context.Context, vendorID int) (*entities.Vendor, error) {
	args := m.Called(ctx, vendorID)
	vendor, _ := args.Get(0).(*entities.Vendor)
	return vendor, args.Error(1)
}

func (m *mockLifecycle) ListByCountry(ctx context.Context, country string) ([]entities.Vendor, error) {
	args := m.Called(ctx, country)
	vendors, _ := args.Get(0).([]entities.Vendor)
	return vendors, args.Error(1)
}

type mockJobService struct {
	mock.Mock
}

func (m *mockJobService) CreateJob(ctx context.Context, req services.CreateJobRequest,
	actorID int) (*entities.Job, error) {
	args := m.Called(ctx, req, actorID)
	job, _ := args.Get(0).(*entities.Job)
	return job, args.Error(1)
}

func (m *mockJobService) GetJob(ctx context.Context, jobID int) (*entities.Job, error) {
	args := m.Called(ctx, jobID)
	job, _ := args.Get(0).(*entities.Job)
	return job, args.Error(1)
}

func (m *mockJobService) ListByCreator(ctx context.Context, actorID int) ([]entities.Job, error) {
	args := m.Called(ctx, actorID)
	jobs, _ := args.Get(0).([]entities.Job)
	return jobs, args.Error(1)
}

func (m *mockJobService) ListForVendor(ctx context.Context, vendorPublicID string) ([]entities.Job, error) {
	args := m.Called(ctx, vendorPublicID)
	jobs, _ := args.Get(0).([]entities.Job)
	return jobs, args.Error(1)
}

type mockEmployeeService struct {
	mock.Mock
}

func (m *mockEmployeeService) SubmitEmployee(ctx context.Context, jobID int, vendorPublicID string,
	actorID int, req services.SubmitEmployeeRequest) (*entities.Employee, error) {
	args := m.Called(ctx, jobID, vendorPublicID, actorID, req)
	employee, _ := args.Get(0).(*entities.Employee)
	return employee, args.Error(1)
}

func (m *mockEmployeeService) GetEmployee(ctx context.Context, employeeID int,
	vendorPublicID string) (*entities.Employee, error) {
	args := m.Called(ctx, employeeID, vendorPublicID)
	employee, _ := args.Get(0).(*entities.Employee)
	return employee, args.Error(1)
}

func (m *mockEmployeeService) ListForJobAsVendor(ctx context.Context, jobID int,
	vendorPublicID string) ([]entities.Employee, error) {
	args := m.Called(ctx, jobID, vendorPublicID)
	employees, _ := args.Get(0).([]entities.Employee)
	return employees, args.Error(1)
}

func (m *mockEmployeeService) ListForJob(ctx context.Context, jobID int) ([]entities.Employee, error) {
	args := m.Called(ctx, jobID)
	employees, _ := args.Get(0).([]entities.Employee)
	return employees, args.Error(1)
}
