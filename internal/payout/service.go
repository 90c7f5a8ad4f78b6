package payout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"glowdesk-be/internal/logger"
	"glowdesk-be/internal/metrics"
	"glowdesk-be/internal/notification"
	"glowdesk-be/internal/utils"
	"glowdesk-be/internal/validation"
	"glowdesk-be/internal/vendor"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Vendors interface {
	Get(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error)
	Mine(ctx context.Context) (*vendor.Vendor, error)
}

type Service interface {
	Create(ctx context.Context, vendorID uuid.UUID) (*Payout, error)
	Process(ctx context.Context, id uuid.UUID, externalRef string) (*Payout, error)
	Fail(ctx context.Context, id uuid.UUID, reason string) (*Payout, error)
	List(ctx context.Context, filter ListFilter) ([]*Payout, error)
	ListMine(ctx context.Context, filter ListFilter) ([]*Payout, error)
}

type service struct {
	repo     Repository
	vendors  Vendors
	notifier notification.Notifier
}

func NewService(repo Repository, vendors Vendors, notifier notification.Notifier) Service {
	return &service{repo: repo, vendors: vendors, notifier: notifier}
}

func (s *service) Create(ctx context.Context, vendorID uuid.UUID) (*Payout, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Payout"),
		zap.String("method", "Create"),
		zap.String("vendor_id", vendorID.String()),
	)

	v, err := s.vendors.Get(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	p := &Payout{
		ID:            uuid.New(),
		Reference:     utils.GenerateReference(utils.PayoutRefPrefix),
		VendorID:      v.ID,
		CommissionBps: v.CommissionBps,
	}

	if err := s.repo.Settle(ctx, p); err != nil {
		if !errors.Is(err, ErrNothingToSettle) {
			log.Error("failed to settle payout", zap.Error(err))
		}
		return nil, err
	}

	metrics.RecordPayout(string(p.Status), p.NetMinor)
	s.notifier.Notify(ctx, v.OwnerUserID, notification.KindPayoutStatus,
		"Payout "+p.Reference+" created",
		fmt.Sprintf("%d bookings, net %d paise after %d paise commission.",
			p.BookingCount, p.NetMinor, p.CommissionMinor),
	)

	log.Info("payout created",
		zap.String("payout_id", p.ID.String()),
		zap.Int64("net_minor", p.NetMinor),
	)
	return p, nil
}

func (s *service) Process(ctx context.Context, id uuid.UUID, externalRef string) (*Payout, error) {
	externalRef = strings.TrimSpace(externalRef)
	var verr validation.Errors
	verr.Required("externalRef", externalRef, 100)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	return s.finish(ctx, id, StatusPaid, func() (*Payout, error) {
		return s.repo.MarkPaid(ctx, id, externalRef)
	})
}

func (s *service) Fail(ctx context.Context, id uuid.UUID, reason string) (*Payout, error) {
	reason = strings.TrimSpace(reason)
	var verr validation.Errors
	verr.Required("reason", reason, 500)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	return s.finish(ctx, id, StatusFailed, func() (*Payout, error) {
		return s.repo.MarkFailed(ctx, id, reason)
	})
}

// finish moves a pending payout to a terminal status through apply and
// tells the vendor owner.
func (s *service) finish(
	ctx context.Context,
	id uuid.UUID,
	to Status,
	apply func() (*Payout, error),
) (*Payout, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Payout"),
		zap.String("payout_id", id.String()),
		zap.String("to", string(to)),
	)

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != StatusPending {
		return nil, ErrInvalidTransition
	}

	p, err := apply()
	if err != nil {
		if !errors.Is(err, ErrInvalidTransition) {
			log.Error("failed to update payout", zap.Error(err))
		}
		return nil, err
	}

	metrics.RecordPayout(string(p.Status), p.NetMinor)

	if v, err := s.vendors.Get(ctx, p.VendorID); err == nil {
		body := fmt.Sprintf("Net amount %d paise.", p.NetMinor)
		if p.Status == StatusFailed {
			body = "Reason: " + p.FailureReason
		}
		s.notifier.Notify(ctx, v.OwnerUserID, notification.KindPayoutStatus,
			"Payout "+p.Reference+" "+string(p.Status), body)
	} else {
		log.Warn("payout vendor lookup failed", zap.Error(err))
	}

	log.Info("payout finished")
	return p, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]*Payout, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		var verr validation.Errors
		verr.Add("status", "unknown payout status")
		return nil, verr
	}
	return s.repo.List(ctx, filter)
}

func (s *service) ListMine(ctx context.Context, filter ListFilter) ([]*Payout, error) {
	v, err := s.vendors.Mine(ctx)
	if err != nil {
		return nil, err
	}
	filter.VendorID = &v.ID
	return s.List(ctx, filter)
}
