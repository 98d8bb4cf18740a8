package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/staffhub/vendorlink/internal/entities"
	"github.com/staffhub/vendorlink/internal/services"
)

type jobService interface {
	CreateJob(ctx context.Context, req services.CreateJobRequest, actorID int) (*entities.Job, error)
	GetJob(ctx context.Context, jobID int) (*entities.Job, error)
	ListByCreator(ctx context.Context, actorID int) ([]entities.Job, error)
	ListForVendor(ctx context.Context, vendorPublicID string) ([]entities.Job, error)
}

type JobHandler struct {
	jobs jobService
}

func NewJobHandler(jobs jobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var dto createJobRequest
	if err := decodeStrict(r.Body, &dto); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	claims := claimsFrom(r)
	job, err := h.jobs.CreateJob(r.Context(), services.CreateJobRequest{
		Title:       dto.Title,
		Description: dto.Description,
		Country:     dto.CountryCode,
		ExpiresAt:   dto.ExpiryDate,
		VendorIDs:   dto.VendorIDs,
	}, claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toJobResponse(*job, time.Now().UTC()))
}

func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.jobs.GetJob(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(*job, time.Now().UTC()))
}

func (h *JobHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	jobs, err := h.jobs.ListByCreator(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponses(jobs, time.Now().UTC()))
}

// GetAssignedJobs lists jobs visible to the calling vendor.
func (h *JobHandler) GetAssignedJobs(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	jobs, err := h.jobs.ListForVendor(r.Context(), claims.VendorPublicID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponses(jobs, time.Now().UTC()))
}
