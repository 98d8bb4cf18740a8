package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/staffhub/vendorlink/internal/entities"
	"github.com/staffhub/vendorlink/internal/services"
)

type employeeService interface {
	SubmitEmployee(ctx context.Context, jobID int, vendorPublicID string, actorID int,
		req services.SubmitEmployeeRequest) (*entities.Employee, error)
	GetEmployee(ctx context.Context, employeeID int, vendorPublicID string) (*entities.Employee, error)
	ListForJobAsVendor(ctx context.Context, jobID int, vendorPublicID string) ([]entities.Employee, error)
	ListForJob(ctx context.Context, jobID int) ([]entities.Employee, error)
}

type EmployeeHandler struct {
	intake employeeService
}

func NewEmployeeHandler(intake employeeService) *EmployeeHandler {
	return &EmployeeHandler{intake: intake}
}

func (h *EmployeeHandler) SubmitEmployee(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var dto submitEmployeeRequest
	if err = decodeStrict(r.Body, &dto); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	claims := claimsFrom(r)
	employee, err := h.intake.SubmitEmployee(r.Context(), jobID, claims.VendorPublicID, claims.UserID,
		services.SubmitEmployeeRequest{
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
			JobTitle:  dto.JobTitle,
			ResumeKey: dto.ResumeKey,
			JobID:     dto.JobID,
		})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeResponse(*employee))
}

func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	claims := claimsFrom(r)
	employee, err := h.intake.GetEmployee(r.Context(), id, claims.VendorPublicID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeResponse(*employee))
}

// GetOwnJobEmployees lists the calling vendor's submissions for one job.
func (h *EmployeeHandler) GetOwnJobEmployees(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	claims := claimsFrom(r)
	employees, err := h.intake.ListForJobAsVendor(r.Context(), jobID, claims.VendorPublicID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeResponses(employees))
}

// GetJobEmployees is the leadership view over every submission for a job.
func (h *EmployeeHandler) GetJobEmployees(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	employees, err := h.intake.ListForJob(r.Context(), jobID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeResponses(employees))
}
