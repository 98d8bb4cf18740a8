package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/staffhub/vendorlink/internal/entities"
	"github.com/staffhub/vendorlink/internal/events"
	"github.com/staffhub/vendorlink/internal/logger"
	"github.com/staffhub/vendorlink/internal/metrics"
)

const tokenTTL = 24 * time.Hour

type vendorRepository interface {
	Add(ctx context.Context, vendor *entities.Vendor) error
	GetByID(ctx context.Context, id int) (*entities.Vendor, error)
	GetByCountry(ctx context.Context, country string) ([]entities.Vendor, error)
	ConsumeToken(ctx context.Context, token string, status entities.VendorStatus,
		now time.Time) (*entities.Vendor, error)
	FinalizePending(ctx context.Context, id int, status entities.VendorStatus,
		reason string, actorID int, now time.Time) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// VerificationSender delivers the out-of-band confirmation link. Delivery is
// best effort: a send failure never undoes the vendor row.
type VerificationSender interface {
	SendVerification(ctx context.Context, email string, token string) error
}

type vendorCacheInvalidator interface {
	Invalidate(publicID string)
}

type CreateVendorRequest struct {
	CompanyName  string `validate:"required"`
	ContactEmail string `validate:"required,email"`
	Country      string `validate:"required"`
}

// VendorLifecycle drives a vendor through Pending and into one of the
// terminal states, either via the vendor's own token round-trip or directly
// by a privileged actor.
type VendorLifecycle struct {
	vendors  vendorRepository
	notifier VerificationSender
	cache    vendorCacheInvalidator
	bus      EventBus.Bus
	validate *validator.Validate
}

func NewVendorLifecycle(vendors vendorRepository, notifier VerificationSender,
	cache vendorCacheInvalidator, bus EventBus.Bus) *VendorLifecycle {

	return &VendorLifecycle{
		vendors:  vendors,
		notifier: notifier,
		cache:    cache,
		bus:      bus,
		validate: validator.New(),
	}
}

// CreateVendor registers a pending vendor, issues a 24-hour single-use token
// and dispatches the verification invitation to the contact email.
func (s *VendorLifecycle) CreateVendor(ctx context.Context, req CreateVendorRequest,
	actorID int) (*entities.Vendor, error) {

	if err := s.validate.Struct(req); err != nil {
		return nil, newValidationError("%v", err)
	}

	vendor := entities.NewVendor(req.CompanyName, req.ContactEmail, req.Country, actorID)
	token := vendor.IssueToken(tokenTTL)

	if err := s.vendors.Add(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to create vendor")
	}
	metrics.VendorsCreatedCounter.Inc()
	s.bus.Publish(events.VendorInvitedTopic, events.VendorInvited{
		PublicID: vendor.PublicID,
		Country:  vendor.Country,
	})

	if err := s.notifier.SendVerification(ctx, vendor.ContactEmail, token); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAmqp).
			Errorf("failed to send verification for vendor %v: %v", vendor.PublicID, err)
	}

	return vendor, nil
}

// ConfirmByToken finalizes the vendor's own accept-or-reject decision. The
// token is consumed on success, so a repeated call with the same value fails
// with ErrTokenInvalidOrExpired.
func (s *VendorLifecycle) ConfirmByToken(ctx context.Context, token string, accept bool) (*entities.Vendor, error) {

	status := entities.VendorRejectedByVendor
	outcome := "declined"
	if accept {
		status = entities.VendorVerified
		outcome = "accepted"
	}

	vendor, err := s.vendors.ConsumeToken(ctx, token, status, time.Now().UTC())
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume verification token")
	}
	if vendor == nil {
		return nil, ErrTokenInvalidOrExpired
	}

	metrics.VerificationsCounter.WithLabelValues(outcome).Inc()
	s.bus.Publish(events.VendorVerifiedTopic, events.VendorVerified{
		PublicID: vendor.PublicID,
		Accepted: accept,
	})
	return vendor, nil
}

// AdminVerify finalizes a pending vendor without the token round-trip.
// Vendors in any other state are not valid verification targets.
func (s *VendorLifecycle) AdminVerify(ctx context.Context, vendorID int, actorID int) error {
	return s.finalize(ctx, vendorID, entities.VendorVerified, "", actorID, "admin_verified")
}

func (s *VendorLifecycle) AdminReject(ctx context.Context, vendorID int, reason string, actorID int) error {
	return s.finalize(ctx, vendorID, entities.VendorRejected, reason, actorID, "admin_rejected")
}

func (s *VendorLifecycle) finalize(ctx context.Context, vendorID int, status entities.VendorStatus,
	reason string, actorID int, outcome string) error {

	ok, err := s.vendors.FinalizePending(ctx, vendorID, status, reason, actorID, time.Now().UTC())
	if err != nil {
		return errors.Wrap(err, "failed to finalize vendor")
	}
	if !ok {
		return ErrInvalidStateTransition
	}

	metrics.VerificationsCounter.WithLabelValues(outcome).Inc()
	s.bus.Publish(events.VendorVerifiedTopic, events.VendorVerified{
		Accepted: status == entities.VendorVerified,
		ByAdmin:  true,
	})
	return nil
}

// DeleteVendor removes the vendor regardless of status, cascading to its
// employees and job assignments.
func (s *VendorLifecycle) DeleteVendor(ctx context.Context, vendorID int) error {

	vendor, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return errors.Wrap(err, "failed to load vendor")
	}
	if vendor == nil {
		return ErrVendorNotFound
	}

	deleted, err := s.vendors.Delete(ctx, vendorID)
	if err != nil {
		return errors.Wrap(err, "failed to delete vendor")
	}
	if !deleted {
		return ErrVendorNotFound
	}

	s.cache.Invalidate(vendor.PublicID)
	return nil
}

func (s *VendorLifecycle) GetVendor(ctx context.Context, vendorID int) (*entities.Vendor, error) {
	vendor, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vendor")
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	return vendor, nil
}

func (s *VendorLifecycle) ListByCountry(ctx context.Context, country string) ([]entities.Vendor, error) {
	vendors, err := s.vendors.GetByCountry(ctx, country)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}
	return vendors, nil
}
