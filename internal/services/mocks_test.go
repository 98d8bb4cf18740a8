package services

import (
	"context"
	"time"

	"github.com/staffhub/vendorlink/internal/entities"
	"github.com/stretchr/testify/mock"
)

type mockVendors struct {
	mock.Mock
}

func (m *mockVendors) Add(ctx context.Context, vendor *entities.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *mockVendors) GetByID(ctx context.Context, id int) (*entities.Vendor, error) {
	args := m.Called(ctx, id)
	vendor, _ := args.Get(0).(*entities.Vendor)
	return vendor, args.Error(1)
}

func (m *mockVendors) GetByCountry(ctx context.Context, country string) ([]entities.Vendor, error) {
	args := m.Called(ctx, country)
	vendors, _ := args.Get(0).([]entities.Vendor)
	return vendors, args.Error(1)
}

func (m *mockVendors) ConsumeToken(ctx context.Context, token string, status entities.VendorStatus,
	now time.Time) (*entities.Vendor, error) {
	args := m.Called(ctx, token, status, now)
	vendor, _ := args.Get(0).(*entities.Vendor)
	return vendor, args.Error(1)
}

func (m *mockVendors) FinalizePending(ctx context.Context, id int, status entities.VendorStatus,
	reason string, actorID int, now time.Time) (bool, error) {
	args := m.Called(ctx, id, status, reason, actorID, now)
	return args.Bool(0), args.Error(1)
}

func (m *mockVendors) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockVendors) GetEligible(ctx context.Context, ids []int, country string) ([]entities.Vendor, error) {
	args := m.Called(ctx, ids, country)
	vendors, _ := args.Get(0).([]entities.Vendor)
	return vendors, args.Error(1)
}

func (m *mockVendors) GetByPublicID(ctx context.Context, publicID string) (*entities.Vendor, error) {
	args := m.Called(ctx, publicID)
	vendor, _ := args.Get(0).(*entities.Vendor)
	return vendor, args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendVerification(ctx context.Context, email string, token string) error {
	return m.Called(ctx, email, token).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Invalidate(publicID string) {
	m.Called(publicID)
}

type mockJobs struct {
	mock.Mock
}

func (m *mockJobs) CreateWithAssignments(ctx context.Context, job *entities.Job, vendorIDs []int) error {
	return m.Called(ctx, job, vendorIDs).Error(0)
}

func (m *mockJobs) GetByID(ctx context.Context, id int) (*entities.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*entities.Job)
	return job, args.Error(1)
}

func (m *mockJobs) GetByCreator(ctx context.Context, creatorID int) ([]entities.Job, error) {
	args := m.Called(ctx, creatorID)
	jobs, _ := args.Get(0).([]entities.Job)
	return jobs, args.Error(1)
}

func (m *mockJobs) GetAssignedToVendor(ctx context.Context, vendorID int) ([]entities.Job, error) {
	args := m.Called(ctx, vendorID)
	jobs, _ := args.Get(0).([]entities.Job)
	return jobs, args.Error(1)
}

func (m *mockJobs) IsVendorAssigned(ctx context.Context, jobID int, vendorID int) (bool, error) {
	args := m.Called(ctx, jobID, vendorID)
	return args.Bool(0), args.Error(1)
}

type mockEmployees struct {
	mock.Mock
}

func (m *mockEmployees) Add(ctx context.Context, employee *entities.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *mockEmployees) GetByJob(ctx context.Context, jobID int) ([]entities.Employee, error) {
	args := m.Called(ctx, jobID)
	employees, _ := args.Get(0).([]entities.Employee)
	return employees, args.Error(1)
}

func (m *mockEmployees) GetByJobForVendor(ctx context.Context, jobID int, vendorID int) ([]entities.Employee, error) {
	args := m.Called(ctx, jobID, vendorID)
	employees, _ := args.Get(0).([]entities.Employee)
	return employees, args.Error(1)
}

func (m *mockEmployees) GetByIDForVendor(ctx context.Context, id int, vendorID int) (*entities.Employee, error) {
	args := m.Called(ctx, id, vendorID)
	employee, _ := args.Get(0).(*entities.Employee)
	return employee, args.Error(1)
}
