package review

import (
	"context"
	"strings"

	"glowdesk-be/internal/booking"
	"glowdesk-be/internal/logger"
	"glowdesk-be/internal/utils"
	"glowdesk-be/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Bookings interface {
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type Service interface {
	Create(ctx context.Context, input CreateInput) (*Review, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID, limit, page int) ([]*Review, Summary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	bookings Bookings
}

func NewService(repo Repository, bookings Bookings) Service {
	return &service{repo: repo, bookings: bookings}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Review, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Review"),
		zap.String("method", "Create"),
		zap.String("booking_id", input.BookingID.String()),
	)

	comment := strings.TrimSpace(input.Comment)

	var verr validation.Errors
	if input.Rating < 1 || input.Rating > 5 {
		verr.Add("rating", "rating must be between 1 and 5")
	}
	verr.MaxLen("comment", comment, 1000)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	b, err := s.bookings.Get(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if b.CustomerID != userID {
		return nil, ErrNotAuthorized
	}
	if b.Status != booking.StatusCompleted {
		return nil, ErrBookingNotCompleted
	}

	rv := &Review{
		ID:         uuid.New(),
		BookingID:  b.ID,
		VendorID:   b.VendorID,
		CustomerID: userID,
		Rating:     input.Rating,
		Comment:    comment,
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	log.Info("review created", zap.Int("rating", rv.Rating))
	return rv, nil
}

func (s *service) ListByVendor(
	ctx context.Context,
	vendorID uuid.UUID,
	limit, page int,
) ([]*Review, Summary, error) {

	list, err := s.repo.ListByVendor(ctx, vendorID, limit, page)
	if err != nil {
		return nil, Summary{}, err
	}

	sum, err := s.repo.Summary(ctx, vendorID)
	if err != nil {
		return nil, Summary{}, err
	}
	return list, sum, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromCtx(ctx).Info("review removed", zap.String("review_id", id.String()))
	return nil
}
