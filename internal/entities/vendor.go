package entities

import (
	"time"

	"github.com/google/uuid"
)

type VendorStatus string

const (
	VendorPending          VendorStatus = "Pending"
	VendorVerified         VendorStatus = "Verified"
	VendorRejected         VendorStatus = "Rejected"
	VendorRejectedByVendor VendorStatus = "RejectedByVendor"
)

// Vendor is a third-party staffing company. The numeric ID is the storage
// key; PublicID is the only identifier ever exposed outside the service.
type Vendor struct {
	ID                int
	PublicID          string `gorm:"uniqueIndex"`
	CompanyName       string
	ContactEmail      string
	Country           string
	Status            VendorStatus
	VerificationToken *string
	TokenExpiry       *time.Time
	RejectionReason   string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	AddedByID         int
	UpdatedByID       *int
}

func NewVendor(companyName, contactEmail, country string, addedByID int) *Vendor {
	return &Vendor{
		PublicID:     uuid.NewString(),
		CompanyName:  companyName,
		ContactEmail: contactEmail,
		Country:      country,
		Status:       VendorPending,
		AddedByID:    addedByID,
	}
}

// IssueToken installs a fresh single-use verification token. Any previously
// stored token is replaced, so at most one live token exists per vendor.
func (v *Vendor) IssueToken(ttl time.Duration) string {
	token := uuid.NewString()
	expiry := time.Now().UTC().Add(ttl)
	v.VerificationToken = &token
	v.TokenExpiry = &expiry
	return token
}

// HasLiveToken reports whether a stored token is still valid at the given
// instant. A token expiring exactly at now is already expired.
func (v *Vendor) HasLiveToken(now time.Time) bool {
	return v.VerificationToken != nil && v.TokenExpiry != nil && v.TokenExpiry.After(now)
}
