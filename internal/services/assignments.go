package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/samber/lo"
	"github.com/staffhub/vendorlink/internal/entities"
	"github.com/staffhub/vendorlink/internal/events"
	"github.com/staffhub/vendorlink/internal/metrics"
)

type jobRepository interface {
	CreateWithAssignments(ctx context.Context, job *entities.Job, vendorIDs []int) error
	GetByID(ctx context.Context, id int) (*entities.Job, error)
	GetByCreator(ctx context.Context, creatorID int) ([]entities.Job, error)
	GetAssignedToVendor(ctx context.Context, vendorID int) ([]entities.Job, error)
}

type eligibleVendorFinder interface {
	GetEligible(ctx context.Context, ids []int, country string) ([]entities.Vendor, error)
}

type vendorResolver interface {
	GetByPublicID(ctx context.Context, publicID string) (*entities.Vendor, error)
}

type CreateJobRequest struct {
	Title       string    `validate:"required"`
	Description string    `validate:"required"`
	Country     string    `validate:"required"`
	ExpiresAt   time.Time `validate:"required"`
	VendorIDs   []int     `validate:"required,min=1"`
}

// JobAssignments creates jobs together with their vendor assignment set and
// serves the read paths over both.
type JobAssignments struct {
	jobs     jobRepository
	vendors  eligibleVendorFinder
	resolver vendorResolver
	bus      EventBus.Bus
	validate *validator.Validate
}

func NewJobAssignments(jobs jobRepository, vendors eligibleVendorFinder,
	resolver vendorResolver, bus EventBus.Bus) *JobAssignments {

	return &JobAssignments{
		jobs:     jobs,
		vendors:  vendors,
		resolver: resolver,
		bus:      bus,
		validate: validator.New(),
	}
}

// CreateJob filters the candidate vendors down to those verified in the
// job's country and persists the job with one assignment per match, all in
// one transaction. Candidates that do not match are dropped silently; a job
// nobody would see is rejected outright.
func (s *JobAssignments) CreateJob(ctx context.Context, req CreateJobRequest, actorID int) (*entities.Job, error) {

	if err := s.validate.Struct(req); err != nil {
		return nil, newValidationError("%v", err)
	}

	eligible, err := s.vendors.GetEligible(ctx, req.VendorIDs, req.Country)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load eligible vendors")
	}
	if len(eligible) == 0 {
		return nil, ErrNoEligibleVendors
	}

	job := &entities.Job{
		Title:       req.Title,
		Description: req.Description,
		Country:     req.Country,
		ExpiresAt:   req.ExpiresAt.UTC(),
		IsActive:    true,
		CreatedByID: actorID,
	}

	vendorIDs := lo.Map(eligible, func(vendor entities.Vendor, _ int) int {
		return vendor.ID
	})
	if err = s.jobs.CreateWithAssignments(ctx, job, vendorIDs); err != nil {
		return nil, errors.Wrap(err, "failed to create job with assignments")
	}

	if dropped := len(req.VendorIDs) - len(eligible); dropped > 0 {
		log.Debugf("job %v: dropped %v ineligible candidate vendors", job.ID, dropped)
	}

	metrics.JobsCreatedCounter.Inc()
	metrics.AssignmentsPerJob.Observe(float64(len(vendorIDs)))
	s.bus.Publish(events.JobCreatedTopic, events.JobCreated{
		JobID:           job.ID,
		Country:         job.Country,
		AssignedVendors: len(vendorIDs),
	})
	return job, nil
}

func (s *JobAssignments) GetJob(ctx context.Context, jobID int) (*entities.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load job")
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (s *JobAssignments) ListByCreator(ctx context.Context, actorID int) ([]entities.Job, error) {
	jobs, err := s.jobs.GetByCreator(ctx, actorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}
	return jobs, nil
}

// ListForVendor returns the jobs the calling vendor is assigned to.
func (s *JobAssignments) ListForVendor(ctx context.Context, vendorPublicID string) ([]entities.Job, error) {
	vendor, err := s.resolver.GetByPublicID(ctx, vendorPublicID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve vendor")
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	jobs, err := s.jobs.GetAssignedToVendor(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assigned jobs")
	}
	return jobs, nil
}
