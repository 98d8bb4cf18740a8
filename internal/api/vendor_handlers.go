package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/staffhub/vendorlink/internal/entities"
	"github.com/staffhub/vendorlink/internal/services"
)

type lifecycleService interface {
	CreateVendor(ctx context.Context, req services.CreateVendorRequest, actorID int) (*entities.Vendor, error)
	ConfirmByToken(ctx context.Context, token string, accept bool) (*entities.Vendor, error)
	AdminVerify(ctx context.Context, vendorID int, actorID int) error
	AdminReject(ctx context.Context, vendorID int, reason string, actorID int) error
	DeleteVendor(ctx context.Context, vendorID int) error
	GetVendor(ctx context.Context, vendorID int) (*entities.Vendor, error)
	ListByCountry(ctx context.Context, country string) ([]entities.Vendor, error)
}

type VendorHandler struct {
	lifecycle lifecycleService
}

func NewVendorHandler(lifecycle lifecycleService) *VendorHandler {
	return &VendorHandler{lifecycle: lifecycle}
}

func (h *VendorHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var dto createVendorRequest
	if err := decodeStrict(r.Body, &dto); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	claims := claimsFrom(r)
	vendor, err := h.lifecycle.CreateVendor(r.Context(), services.CreateVendorRequest{
		CompanyName:  dto.CompanyName,
		ContactEmail: dto.ContactEmail,
		Country:      dto.Country,
	}, claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// 202: the vendor's own confirmation is still outstanding.
	writeJSON(w, http.StatusAccepted, toVendorResponse(*vendor))
}

func (h *VendorHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}

	vendor, err := h.lifecycle.GetVendor(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVendorResponse(*vendor))
}

func (h *VendorHandler) GetVendorsByCountry(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.lifecycle.ListByCountry(r.Context(), r.PathValue("code"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVendorResponses(vendors))
}

// ConfirmVendor serves the emailed verification link. It is the only
// unauthenticated route; the token itself is the credential.
func (h *VendorHandler) ConfirmVendor(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "missing token")
		return
	}
	accept := r.URL.Query().Get("accept") != "false"

	vendor, err := h.lifecycle.ConfirmByToken(r.Context(), token, accept)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(vendor.Status)})
}

func (h *VendorHandler) VerifyVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}

	claims := claimsFrom(r)
	if err = h.lifecycle.AdminVerify(r.Context(), id, claims.UserID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(entities.VendorVerified)})
}

func (h *VendorHandler) RejectVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}

	var dto rejectVendorRequest
	if err = decodeStrict(r.Body, &dto); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	claims := claimsFrom(r)
	if err = h.lifecycle.AdminReject(r.Context(), id, dto.Reason, claims.UserID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(entities.VendorRejected)})
}

func (h *VendorHandler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}

	if err = h.lifecycle.DeleteVendor(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
