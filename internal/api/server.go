package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/staffhub/vendorlink/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.APIConfig, vendors *VendorHandler, jobs *JobHandler,
	employees *EmployeeHandler) *Server {

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Emailed confirmation link; the token is the credential.
	mux.HandleFunc("GET /api/verify", vendors.ConfirmVendor)

	mux.HandleFunc("POST /api/leadership/vendors", requireRole(RoleLeadership, vendors.CreateVendor))
	mux.HandleFunc("GET /api/leadership/vendors/{id}", requireRole(RoleLeadership, vendors.GetVendor))
	mux.HandleFunc("GET /api/leadership/countries/{code}/vendors",
		requireRole(RoleLeadership, vendors.GetVendorsByCountry))
	mux.HandleFunc("POST /api/leadership/jobs", requireRole(RoleLeadership, jobs.CreateJob))
	mux.HandleFunc("GET /api/leadership/jobs", requireRole(RoleLeadership, jobs.GetJobs))
	mux.HandleFunc("GET /api/leadership/jobs/{id}", requireRole(RoleLeadership, jobs.GetJob))
	mux.HandleFunc("GET /api/leadership/jobs/{id}/employees",
		requireRole(RoleLeadership, employees.GetJobEmployees))

	mux.HandleFunc("POST /api/admin/vendors/{id}/verify", requireRole(RoleAdmin, vendors.VerifyVendor))
	mux.HandleFunc("POST /api/admin/vendors/{id}/reject", requireRole(RoleAdmin, vendors.RejectVendor))
	mux.HandleFunc("DELETE /api/admin/vendors/{id}", requireRole(RoleAdmin, vendors.DeleteVendor))

	mux.HandleFunc("GET /api/vendor/jobs", requireRole(RoleVendor, jobs.GetAssignedJobs))
	mux.HandleFunc("POST /api/vendor/jobs/{id}/employees", requireRole(RoleVendor, employees.SubmitEmployee))
	mux.HandleFunc("GET /api/vendor/jobs/{id}/employees", requireRole(RoleVendor, employees.GetOwnJobEmployees))
	mux.HandleFunc("GET /api/vendor/employees/{id}", requireRole(RoleVendor, employees.GetEmployee))

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
