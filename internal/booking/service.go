package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"glowdesk-be/internal/address"
	"glowdesk-be/internal/logger"
	"glowdesk-be/internal/metrics"
	"glowdesk-be/internal/notification"
	"glowdesk-be/internal/utils"
	"glowdesk-be/internal/validation"
	"glowdesk-be/internal/vendor"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Vendors is the slice of the vendor service bookings depend on.
type Vendors interface {
	Get(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error)
	GetOffering(ctx context.Context, id uuid.UUID) (*vendor.Offering, error)
	Mine(ctx context.Context) (*vendor.Vendor, error)
}

// Addresses resolves a customer's address with the address service's own
// ownership checks.
type Addresses interface {
	Get(ctx context.Context, id uuid.UUID) (*address.Address, error)
}

type Service interface {
	Create(ctx context.Context, input CreateInput) (*Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListMine(ctx context.Context, filter ListFilter) ([]*Booking, error)
	ListForVendor(ctx context.Context, filter ListFilter) ([]*Booking, error)
	ListAll(ctx context.Context, filter ListFilter) ([]*Booking, error)

	Cancel(ctx context.Context, id uuid.UUID) (*Booking, error)
	UpdateStatusAsVendor(ctx context.Context, id uuid.UUID, to Status) (*Booking, error)
}

type service struct {
	repo      Repository
	vendors   Vendors
	addresses Addresses
	notifier  notification.Notifier
	now       func() time.Time
}

func NewService(
	repo Repository,
	vendors Vendors,
	addresses Addresses,
	notifier notification.Notifier,
) Service {
	return &service{
		repo:      repo,
		vendors:   vendors,
		addresses: addresses,
		notifier:  notifier,
		now:       time.Now,
	}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Booking, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Booking"),
		zap.String("method", "Create"),
		zap.String("offering_id", input.OfferingID.String()),
	)

	var verr validation.Errors
	if !input.ScheduledAt.After(s.now()) {
		verr.Add("scheduledAt", "scheduledAt must be in the future")
	}
	verr.MaxLen("notes", input.Notes, 500)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	offering, err := s.vendors.GetOffering(ctx, input.OfferingID)
	if err != nil {
		if errors.Is(err, vendor.ErrOfferingNotFound) {
			return nil, ErrOfferingUnavailable
		}
		return nil, err
	}
	if !offering.IsActive {
		return nil, ErrOfferingUnavailable
	}

	v, err := s.vendors.Get(ctx, offering.VendorID)
	if err != nil {
		if errors.Is(err, vendor.ErrVendorNotFound) {
			return nil, ErrOfferingUnavailable
		}
		return nil, err
	}
	if v.Status != vendor.StatusApproved {
		return nil, ErrOfferingUnavailable
	}

	if input.AddressID != nil {
		if _, err := s.addresses.Get(ctx, *input.AddressID); err != nil {
			return nil, err
		}
	}

	b := &Booking{
		ID:          uuid.New(),
		Reference:   utils.GenerateReference(utils.BookingRefPrefix),
		CustomerID:  userID,
		VendorID:    v.ID,
		OfferingID:  offering.ID,
		AddressID:   input.AddressID,
		ScheduledAt: input.ScheduledAt.UTC(),
		Status:      StatusPending,
		AmountMinor: offering.PriceMinor,
		Notes:       strings.TrimSpace(input.Notes),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	metrics.RecordBookingStatus(string(b.Status))
	s.notifier.Notify(ctx, v.OwnerUserID, notification.KindBookingCreated,
		"New booking "+b.Reference,
		fmt.Sprintf("%s on %s", offering.Name, b.ScheduledAt.Format(time.RFC1123)),
	)

	log.Info("booking created",
		zap.String("booking_id", b.ID.String()),
		zap.String("reference", b.Reference),
	)
	return b, nil
}

// callerVendorID returns the id of the caller's vendor, or uuid.Nil when
// the caller does not own one.
func (s *service) callerVendorID(ctx context.Context) (uuid.UUID, error) {
	v, err := s.vendors.Mine(ctx)
	if err != nil {
		if errors.Is(err, vendor.ErrVendorNotFound) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return v.ID, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Booking, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.CustomerID == userID || utils.IsAdmin(ctx) {
		return b, nil
	}

	vendorID, err := s.callerVendorID(ctx)
	if err != nil {
		return nil, err
	}
	if vendorID != b.VendorID {
		return nil, ErrNotAuthorized
	}
	return b, nil
}

func (s *service) ListMine(ctx context.Context, filter ListFilter) ([]*Booking, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	filter.CustomerID = &userID
	filter.VendorID = nil
	return s.list(ctx, filter)
}

func (s *service) ListForVendor(ctx context.Context, filter ListFilter) ([]*Booking, error) {
	v, err := s.vendors.Mine(ctx)
	if err != nil {
		return nil, err
	}
	filter.VendorID = &v.ID
	filter.CustomerID = nil
	return s.list(ctx, filter)
}

func (s *service) ListAll(ctx context.Context, filter ListFilter) ([]*Booking, error) {
	return s.list(ctx, filter)
}

func (s *service) list(ctx context.Context, filter ListFilter) ([]*Booking, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		var verr validation.Errors
		verr.Add("status", "unknown booking status")
		return nil, verr
	}
	return s.repo.List(ctx, filter)
}

// Cancel may be called by the customer or by the vendor that owns the
// booking. The other party is notified.
func (s *service) Cancel(ctx context.Context, id uuid.UUID) (*Booking, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	byCustomer := b.CustomerID == userID
	if !byCustomer {
		vendorID, err := s.callerVendorID(ctx)
		if err != nil {
			return nil, err
		}
		if vendorID != b.VendorID {
			return nil, ErrNotAuthorized
		}
	}

	updated, err := s.transition(ctx, b, StatusCancelled)
	if err != nil {
		return nil, err
	}

	if byCustomer {
		if v, err := s.vendors.Get(ctx, b.VendorID); err == nil {
			s.notifier.Notify(ctx, v.OwnerUserID, notification.KindBookingStatus,
				"Booking "+b.Reference+" cancelled", "The customer cancelled this booking.")
		}
	} else {
		s.notifyCustomer(ctx, updated)
	}
	return updated, nil
}

func (s *service) UpdateStatusAsVendor(ctx context.Context, id uuid.UUID, to Status) (*Booking, error) {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return nil, ErrUnauthenticated
	}
	if !to.Valid() || to == StatusPending {
		var verr validation.Errors
		verr.Add("status", "status must be confirmed, completed or cancelled")
		return nil, verr
	}

	v, err := s.vendors.Mine(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.VendorID != v.ID {
		return nil, ErrNotAuthorized
	}

	updated, err := s.transition(ctx, b, to)
	if err != nil {
		return nil, err
	}

	s.notifyCustomer(ctx, updated)
	return updated, nil
}

func (s *service) transition(ctx context.Context, b *Booking, to Status) (*Booking, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Booking"),
		zap.String("booking_id", b.ID.String()),
		zap.String("from", string(b.Status)),
		zap.String("to", string(to)),
	)

	if !canTransition(b.Status, to) {
		log.Info("rejected transition")
		return nil, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, b.ID, allowedFrom[to], to)
	if err != nil {
		if !errors.Is(err, ErrInvalidTransition) {
			log.Error("failed to update booking status", zap.Error(err))
		}
		return nil, err
	}

	metrics.RecordBookingStatus(string(to))
	log.Info("booking status changed")
	return updated, nil
}

func (s *service) notifyCustomer(ctx context.Context, b *Booking) {
	s.notifier.Notify(ctx, b.CustomerID, notification.KindBookingStatus,
		"Booking "+b.Reference+" "+string(b.Status),
		fmt.Sprintf("Your booking scheduled for %s is now %s.",
			b.ScheduledAt.Format(time.RFC1123), b.Status),
	)
}
