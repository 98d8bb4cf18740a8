package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/staffhub/vendorlink/internal/entities"
	"github.com/staffhub/vendorlink/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_CreateVendor_RespondsAccepted(t *testing.T) {
	lifecycle := &mockLifecycle{}
	lifecycle.On("CreateVendor", mock.Anything, services.CreateVendorRequest{
		CompanyName:  "Acme Staffing",
		ContactEmail: "hr@acme.test",
		Country:      "US",
	}, 7).Return(&entities.Vendor{
		ID: 1, PublicID: "pub-1", CompanyName: "Acme Staffing", ContactEmail: "hr@acme.test",
		Country: "US", Status: entities.VendorPending, CreatedAt: time.Now(), AddedByID: 7,
	}, nil)

	handler := NewVendorHandler(lifecycle)
	body := `{"company_name":"Acme Staffing","contact_email":"hr@acme.test","country":"US"}`
	r := httptest.NewRequest(http.MethodPost, "/api/leadership/vendors", strings.NewReader(body))
	r.Header.Set("X-User-Id", "7")
	w := httptest.NewRecorder()

	handler.CreateVendor(w, r)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp vendorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pub-1", resp.PublicID)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, "US", resp.Country)
}

func Test_CreateVendor_RejectsUnknownFields(t *testing.T) {
	handler := NewVendorHandler(&mockLifecycle{})
	body := `{"company_name":"Acme","surprise":"field"}`
	r := httptest.NewRequest(http.MethodPost, "/api/leadership/vendors", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateVendor(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_ConfirmVendor_MapsExpiredTokenToGone(t *testing.T) {
	lifecycle := &mockLifecycle{}
	lifecycle.On("ConfirmByToken", mock.Anything, "stale", true).
		Return(nil, services.ErrTokenInvalidOrExpired)

	handler := NewVendorHandler(lifecycle)
	r := httptest.NewRequest(http.MethodGet, "/api/verify?token=stale", nil)
	w := httptest.NewRecorder()

	handler.ConfirmVendor(w, r)

	assert.Equal(t, http.StatusGone, w.Code)
}

func Test_ConfirmVendor_DeclinePassesAcceptFalse(t *testing.T) {
	lifecycle := &mockLifecycle{}
	lifecycle.On("ConfirmByToken", mock.Anything, "tok", false).
		Return(&entities.Vendor{Status: entities.VendorRejectedByVendor}, nil)

	handler := NewVendorHandler(lifecycle)
	r := httptest.NewRequest(http.MethodGet, "/api/verify?token=tok&accept=false", nil)
	w := httptest.NewRecorder()

	handler.ConfirmVendor(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(entities.VendorRejectedByVendor))
}

func Test_VerifyVendor_NonPendingLooksLikeNotFound(t *testing.T) {
	lifecycle := &mockLifecycle{}
	lifecycle.On("AdminVerify", mock.Anything, 5, 2).
		Return(services.ErrInvalidStateTransition)

	handler := NewVendorHandler(lifecycle)
	r := httptest.NewRequest(http.MethodPost, "/api/admin/vendors/5/verify", nil)
	r.SetPathValue("id", "5")
	r.Header.Set("X-User-Id", "2")
	w := httptest.NewRecorder()

	handler.VerifyVendor(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_RejectVendor_PassesReason(t *testing.T) {
	lifecycle := &mockLifecycle{}
	lifecycle.On("AdminReject", mock.Anything, 5, "incomplete details", 2).Return(nil)

	handler := NewVendorHandler(lifecycle)
	r := httptest.NewRequest(http.MethodPost, "/api/admin/vendors/5/reject",
		strings.NewReader(`{"reason":"incomplete details"}`))
	r.SetPathValue("id", "5")
	r.Header.Set("X-User-Id", "2")
	w := httptest.NewRecorder()

	handler.RejectVendor(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	lifecycle.AssertExpectations(t)
}

func Test_DeleteVendor_RespondsNoContent(t *testing.T) {
	lifecycle := &mockLifecycle{}
	lifecycle.On("DeleteVendor", mock.Anything, 3).Return(nil)

	handler := NewVendorHandler(lifecycle)
	r := httptest.NewRequest(http.MethodDelete, "/api/admin/vendors/3", nil)
	r.SetPathValue("id", "3")
	w := httptest.NewRecorder()

	handler.DeleteVendor(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_RequireRole_BlocksMissingRole(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/leadership/jobs", nil)
	r.Header.Set("X-User-Roles", "Vendor")
	w := httptest.NewRecorder()
	requireRole(RoleLeadership, next)(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = httptest.NewRequest(http.MethodGet, "/api/leadership/jobs", nil)
	r.Header.Set("X-User-Roles", "Vendor, Leadership")
	w = httptest.NewRecorder()
	requireRole(RoleLeadership, next)(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
