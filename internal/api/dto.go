package api

import (
	"time"

	"github.com/samber/lo"
	"github.com/staffhub/vendorlink/internal/entities"
)

type createVendorRequest struct {
	CompanyName  string `json:"company_name"`
	ContactEmail string `json:"contact_email"`
	Country      string `json:"country"`
}

type rejectVendorRequest struct {
	Reason string `json:"reason"`
}

type vendorResponse struct {
	ID           int       `json:"id"`
	PublicID     string    `json:"public_id"`
	CompanyName  string    `json:"company_name"`
	ContactEmail string    `json:"contact_email"`
	Country      string    `json:"country"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	AddedByID    int       `json:"added_by_id"`
}

func toVendorResponse(vendor entities.Vendor) vendorResponse {
	return vendorResponse{
		ID:           vendor.ID,
		PublicID:     vendor.PublicID,
		CompanyName:  vendor.CompanyName,
		ContactEmail: vendor.ContactEmail,
		Country:      vendor.Country,
		Status:       string(vendor.Status),
		CreatedAt:    vendor.CreatedAt,
		AddedByID:    vendor.AddedByID,
	}
}

type createJobRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CountryCode string    `json:"country_code"`
	ExpiryDate  time.Time `json:"expiry_date"`
	VendorIDs   []int     `json:"vendor_ids"`
}

type jobResponse struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Country       string    `json:"country"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiryDate    time.Time `json:"expiry_date"`
	DaysRemaining float64   `json:"days_remaining"`
	IsActive      bool      `json:"is_active"`
}

func toJobResponse(job entities.Job, now time.Time) jobResponse {
	return jobResponse{
		ID:            job.ID,
		Title:         job.Title,
		Description:   job.Description,
		Country:       job.Country,
		CreatedAt:     job.CreatedAt,
		ExpiryDate:    job.ExpiresAt,
		DaysRemaining: job.DaysRemaining(now),
		IsActive:      job.IsActive,
	}
}

func toJobResponses(jobs []entities.Job, now time.Time) []jobResponse {
	return lo.Map(jobs, func(job entities.Job, _ int) jobResponse {
		return toJobResponse(job, now)
	})
}

type submitEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	JobTitle  string `json:"job_title,omitempty"`
	ResumeKey string `json:"resume_key,omitempty"`
	JobID     int    `json:"job_id"`
}

type employeeResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	JobTitle  string `json:"job_title,omitempty"`
	ResumeKey string `json:"resume_key,omitempty"`
	JobID     int    `json:"job_id"`
}

func toEmployeeResponse(employee entities.Employee) employeeResponse {
	return employeeResponse{
		ID:        employee.ID,
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		JobTitle:  employee.JobTitle,
		ResumeKey: employee.ResumeKey,
		JobID:     employee.JobID,
	}
}

func toEmployeeResponses(employees []entities.Employee) []employeeResponse {
	return lo.Map(employees, func(employee entities.Employee, _ int) employeeResponse {
		return toEmployeeResponse(employee)
	})
}

func toVendorResponses(vendors []entities.Vendor) []vendorResponse {
	return lo.Map(vendors, func(vendor entities.Vendor, _ int) vendorResponse {
		return toVendorResponse(vendor)
	})
}
