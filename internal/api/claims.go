package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	RoleAdmin      = "Admin"
	RoleLeadership = "Leadership"
	RoleVendor     = "Vendor"
)

// Claims carry the acting identity injected by the authenticating gateway.
// The service trusts these headers; authentication itself happens upstream.
type Claims struct {
	UserID         int
	Roles          []string
	VendorPublicID string
}

func claimsFrom(r *http.Request) Claims {
	userID, _ := strconv.Atoi(r.Header.Get("X-User-Id"))

	var roles []string
	if raw := r.Header.Get("X-User-Roles"); raw != "" {
		roles = lo.Map(strings.Split(raw, ","), func(role string, _ int) string {
			return strings.TrimSpace(role)
		})
	}

	return Claims{
		UserID:         userID,
		Roles:          roles,
		VendorPublicID: r.Header.Get("X-Vendor-Id"),
	}
}

func (c Claims) hasRole(role string) bool {
	return lo.Contains(c.Roles, role)
}

// requireRole gates a handler on one of the gateway-asserted roles. The
// business core never re-derives role checks.
func requireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r)
		if !claims.hasRole(role) {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next(w, r)
	}
}
