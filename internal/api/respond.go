package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/staffhub/vendorlink/internal/logger"
	"github.com/staffhub/vendorlink/internal/services"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// decodeStrict rejects unknown fields and trailing garbage.
func decodeStrict(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected additional JSON content")
	}

	return nil
}

// writeServiceError maps the business taxonomy onto transport status codes.
// Authorization-shaped failures answer 404 so callers cannot probe which
// vendors or jobs exist; anything outside the taxonomy is an internal error
// and stays opaque.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case services.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrTokenInvalidOrExpired):
		writeError(w, http.StatusGone, "verification link is invalid or expired")
	case errors.Is(err, services.ErrInvalidStateTransition):
		writeError(w, http.StatusNotFound, "vendor not found or not pending")
	case errors.Is(err, services.ErrNoEligibleVendors):
		writeError(w, http.StatusUnprocessableEntity, "no eligible vendors for this job")
	case errors.Is(err, services.ErrVendorNotFound),
		errors.Is(err, services.ErrNotAssigned),
		errors.Is(err, services.ErrJobNotFound),
		errors.Is(err, services.ErrEmployeeNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeApi).Errorf("unhandled error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
