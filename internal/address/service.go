package address

import (
	"context"
	"errors"

	"glowdesk-be/internal/logger"
	"glowdesk-be/internal/metrics"
	"glowdesk-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service manages a user's saved addresses. At most one address per user
// is flagged default at any time.
type Service interface {
	List(ctx context.Context) ([]*Address, error)
	Get(ctx context.Context, addressID uuid.UUID) (*Address, error)

	Create(ctx context.Context, input CreateAddressInput) (*Address, error)
	Update(ctx context.Context, addressID uuid.UUID, input UpdateAddressInput) (*Address, error)
	Delete(ctx context.Context, addressID uuid.UUID) error

	SetDefault(ctx context.Context, addressID uuid.UUID) (*Address, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(
	ctx context.Context,
) ([]*Address, error) {

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "List"),
	)
	log.Debug("listing addresses")

	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) Get(
	ctx context.Context,
	addressID uuid.UUID,
) (*Address, error) {

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	return s.owned(ctx, userID, addressID)
}

// owned loads an address and checks that userID owns it.
func (s *service) owned(
	ctx context.Context,
	userID uint,
	addressID uuid.UUID,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("address_id", addressID.String()),
	)

	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil {
		if !errors.Is(err, ErrAddressNotFound) {
			log.Error("failed to load address", zap.Error(err))
		}
		return nil, err
	}

	if addr.UserID != userID {
		log.Warn("address owned by another user", zap.Uint("owner_id", addr.UserID))
		return nil, ErrNotAuthorized
	}

	return addr, nil
}

func (s *service) Create(
	ctx context.Context,
	input CreateAddressInput,
) (*Address, error) {

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Create"),
	)

	addr := &Address{
		ID:           uuid.New(),
		UserID:       userID,
		Label:        input.Label,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		State:        input.State,
		Pincode:      input.Pincode,
		IsDefault:    input.IsDefault != nil && *input.IsDefault,
		Geo:          input.Geo,
	}

	normalize(addr)
	if err := validate(addr); err != nil {
		return nil, err
	}

	var err error
	if addr.IsDefault {
		err = s.repo.WithUserLock(ctx, userID, func(repo Repository) error {
			if err := repo.ClearDefault(ctx, userID); err != nil {
				return err
			}
			return repo.Create(ctx, addr)
		})
	} else {
		err = s.repo.Create(ctx, addr)
	}

	if err != nil {
		log.Error("failed to create address", zap.Error(err))
		return nil, err
	}

	if addr.IsDefault {
		metrics.RecordDefaultSwitch()
	}

	log.Info("address created",
		zap.String("address_id", addr.ID.String()),
		zap.Bool("is_default", addr.IsDefault),
	)
	return addr, nil
}

func (s *service) Update(
	ctx context.Context,
	addressID uuid.UUID,
	input UpdateAddressInput,
) (*Address, error) {

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Update"),
		zap.String("address_id", addressID.String()),
	)

	addr, err := s.owned(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	applyUpdate(addr, input)
	normalize(addr)
	if err := validate(addr); err != nil {
		return nil, err
	}

	// The flag is only written when the caller sets it, so a plain edit
	// never overwrites a concurrent switch with a stale value.
	becameDefault := input.IsDefault != nil && *input.IsDefault
	if input.IsDefault != nil {
		err = s.repo.WithUserLock(ctx, userID, func(repo Repository) error {
			if becameDefault {
				if err := repo.ClearDefault(ctx, userID); err != nil {
					return err
				}
			}
			return repo.Update(ctx, addr, input.IsDefault)
		})
	} else {
		err = s.repo.Update(ctx, addr, nil)
	}

	if err != nil {
		if !errors.Is(err, ErrAddressNotFound) {
			log.Error("failed to update address", zap.Error(err))
		}
		return nil, err
	}

	if becameDefault {
		metrics.RecordDefaultSwitch()
	}

	log.Info("address updated", zap.Bool("is_default", addr.IsDefault))
	return addr, nil
}

func applyUpdate(addr *Address, in UpdateAddressInput) {
	if in.Label != nil {
		addr.Label = *in.Label
	}
	if in.AddressLine1 != nil {
		addr.AddressLine1 = *in.AddressLine1
	}
	if in.AddressLine2 != nil {
		addr.AddressLine2 = *in.AddressLine2
	}
	if in.City != nil {
		addr.City = *in.City
	}
	if in.State != nil {
		addr.State = *in.State
	}
	if in.Pincode != nil {
		addr.Pincode = *in.Pincode
	}
	if in.IsDefault != nil {
		addr.IsDefault = *in.IsDefault
	}
	if in.ClearGeo {
		addr.Geo = nil
	} else if in.Geo != nil {
		addr.Geo = in.Geo
	}
}

// Delete removes the address. Deleting the default leaves the user with no
// default; no sibling is promoted.
func (s *service) Delete(
	ctx context.Context,
	addressID uuid.UUID,
) error {

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Delete"),
		zap.String("address_id", addressID.String()),
	)

	addr, err := s.owned(ctx, userID, addressID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, addressID); err != nil {
		if !errors.Is(err, ErrAddressNotFound) {
			log.Error("failed to delete address", zap.Error(err))
		}
		return err
	}

	log.Info("address deleted", zap.Bool("was_default", addr.IsDefault))
	return nil
}

func (s *service) SetDefault(
	ctx context.Context,
	addressID uuid.UUID,
) (*Address, error) {

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "SetDefault"),
		zap.String("address_id", addressID.String()),
	)

	if _, err := s.owned(ctx, userID, addressID); err != nil {
		return nil, err
	}

	var updated *Address
	err := s.repo.WithUserLock(ctx, userID, func(repo Repository) error {
		if err := repo.ClearDefault(ctx, userID); err != nil {
			return err
		}
		a, err := repo.SetDefault(ctx, userID, addressID)
		if err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAddressNotFound) {
			log.Error("failed to set default address", zap.Error(err))
		}
		return nil, err
	}

	metrics.RecordDefaultSwitch()
	log.Info("default address set")
	return updated, nil
}
