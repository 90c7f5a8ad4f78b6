package rest

import (
	"context"

	"glowdesk-be/internal/address"
	"glowdesk-be/internal/analytics"
	"glowdesk-be/internal/booking"
	"glowdesk-be/internal/notification"
	"glowdesk-be/internal/payout"
	"glowdesk-be/internal/user"
	"glowdesk-be/internal/vendor"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAddressService struct{ mock.Mock }

func (m *mockAddressService) List(ctx context.Context) ([]*address.Address, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*address.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAddressService) Get(ctx context.Context, id uuid.UUID) (*address.Address, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*address.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAddressService) Create(ctx context.Context, input address.CreateAddressInput) (*address.Address, error) {
	args := m.Called(ctx, input)
	if v := args.Get(0); v != nil {
		return v.(*address.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAddressService) Update(ctx context.Context, id uuid.UUID, input address.UpdateAddressInput) (*address.Address, error) {
	args := m.Called(ctx, id, input)
	if v := args.Get(0); v != nil {
		return v.(*address.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAddressService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAddressService) SetDefault(ctx context.Context, id uuid.UUID) (*address.Address, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*address.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Register(ctx context.Context, input user.RegisterInput) (string, *user.User, error) {
	args := m.Called(ctx, input)
	if v := args.Get(1); v != nil {
		return args.String(0), v.(*user.User), args.Error(2)
	}
	return args.String(0), nil, args.Error(2)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	args := m.Called(ctx, email, password)
	if v := args.Get(1); v != nil {
		return args.String(0), v.(*user.User), args.Error(2)
	}
	return args.String(0), nil, args.Error(2)
}

func (m *mockUserService) Me(ctx context.Context) (*user.User, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) UpdateRole(ctx context.Context, userID uint, role string) error {
	return m.Called(ctx, userID, role).Error(0)
}

type mockVendorService struct{ mock.Mock }

func (m *mockVendorService) vendorResult(args mock.Arguments) (*vendor.Vendor, error) {
	if v := args.Get(0); v != nil {
		return v.(*vendor.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorService) offeringResult(args mock.Arguments) (*vendor.Offering, error) {
	if v := args.Get(0); v != nil {
		return v.(*vendor.Offering), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorService) Apply(ctx context.Context, input vendor.ApplyInput) (*vendor.Vendor, error) {
	return m.vendorResult(m.Called(ctx, input))
}

func (m *mockVendorService) Get(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error) {
	return m.vendorResult(m.Called(ctx, id))
}

func (m *mockVendorService) Mine(ctx context.Context) (*vendor.Vendor, error) {
	return m.vendorResult(m.Called(ctx))
}

func (m *mockVendorService) ListPublic(ctx context.Context, filter vendor.ListFilter) ([]*vendor.Vendor, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*vendor.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorService) ListForAdmin(ctx context.Context, filter vendor.ListFilter) ([]*vendor.Vendor, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*vendor.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorService) Approve(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error) {
	return m.vendorResult(m.Called(ctx, id))
}

func (m *mockVendorService) Reject(ctx context.Context, id uuid.UUID, reason string) (*vendor.Vendor, error) {
	return m.vendorResult(m.Called(ctx, id, reason))
}

func (m *mockVendorService) Suspend(ctx context.Context, id uuid.UUID, reason string) (*vendor.Vendor, error) {
	return m.vendorResult(m.Called(ctx, id, reason))
}

func (m *mockVendorService) SetCommission(ctx context.Context, id uuid.UUID, bps int) (*vendor.Vendor, error) {
	return m.vendorResult(m.Called(ctx, id, bps))
}

func (m *mockVendorService) AddOffering(ctx context.Context, input vendor.OfferingInput) (*vendor.Offering, error) {
	return m.offeringResult(m.Called(ctx, input))
}

func (m *mockVendorService) SetOfferingActive(ctx context.Context, id uuid.UUID, active bool) (*vendor.Offering, error) {
	return m.offeringResult(m.Called(ctx, id, active))
}

func (m *mockVendorService) GetOffering(ctx context.Context, id uuid.UUID) (*vendor.Offering, error) {
	return m.offeringResult(m.Called(ctx, id))
}

func (m *mockVendorService) ListOfferings(ctx context.Context, vendorID uuid.UUID) ([]*vendor.Offering, error) {
	args := m.Called(ctx, vendorID)
	if v := args.Get(0); v != nil {
		return v.([]*vendor.Offering), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorService) MyOfferings(ctx context.Context) ([]*vendor.Offering, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*vendor.Offering), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) one(args mock.Arguments) (*booking.Booking, error) {
	if v := args.Get(0); v != nil {
		return v.(*booking.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) many(args mock.Arguments) ([]*booking.Booking, error) {
	if v := args.Get(0); v != nil {
		return v.([]*booking.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) Create(ctx context.Context, input booking.CreateInput) (*booking.Booking, error) {
	return m.one(m.Called(ctx, input))
}

func (m *mockBookingService) Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return m.one(m.Called(ctx, id))
}

func (m *mockBookingService) ListMine(ctx context.Context, filter booking.ListFilter) ([]*booking.Booking, error) {
	return m.many(m.Called(ctx, filter))
}

func (m *mockBookingService) ListForVendor(ctx context.Context, filter booking.ListFilter) ([]*booking.Booking, error) {
	return m.many(m.Called(ctx, filter))
}

func (m *mockBookingService) ListAll(ctx context.Context, filter booking.ListFilter) ([]*booking.Booking, error) {
	return m.many(m.Called(ctx, filter))
}

func (m *mockBookingService) Cancel(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return m.one(m.Called(ctx, id))
}

func (m *mockBookingService) UpdateStatusAsVendor(ctx context.Context, id uuid.UUID, to booking.Status) (*booking.Booking, error) {
	return m.one(m.Called(ctx, id, to))
}

type mockPayoutService struct{ mock.Mock }

func (m *mockPayoutService) one(args mock.Arguments) (*payout.Payout, error) {
	if v := args.Get(0); v != nil {
		return v.(*payout.Payout), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPayoutService) many(args mock.Arguments) ([]*payout.Payout, error) {
	if v := args.Get(0); v != nil {
		return v.([]*payout.Payout), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPayoutService) Create(ctx context.Context, vendorID uuid.UUID) (*payout.Payout, error) {
	return m.one(m.Called(ctx, vendorID))
}

func (m *mockPayoutService) Process(ctx context.Context, id uuid.UUID, externalRef string) (*payout.Payout, error) {
	return m.one(m.Called(ctx, id, externalRef))
}

func (m *mockPayoutService) Fail(ctx context.Context, id uuid.UUID, reason string) (*payout.Payout, error) {
	return m.one(m.Called(ctx, id, reason))
}

func (m *mockPayoutService) List(ctx context.Context, filter payout.ListFilter) ([]*payout.Payout, error) {
	return m.many(m.Called(ctx, filter))
}

func (m *mockPayoutService) ListMine(ctx context.Context, filter payout.ListFilter) ([]*payout.Payout, error) {
	return m.many(m.Called(ctx, filter))
}

type mockNotificationService struct{ mock.Mock }

func (m *mockNotificationService) Notify(ctx context.Context, userID uint, kind notification.Kind, title, body string) {
	m.Called(ctx, userID, kind, title, body)
}

func (m *mockNotificationService) List(ctx context.Context, unreadOnly bool) ([]*notification.Notification, error) {
	args := m.Called(ctx, unreadOnly)
	if v := args.Get(0); v != nil {
		return v.([]*notification.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationService) MarkRead(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*notification.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationService) MarkAllRead(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockAnalyticsService struct{ mock.Mock }

func (m *mockAnalyticsService) Dashboard(ctx context.Context) (*analytics.Dashboard, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*analytics.Dashboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyticsService) Revenue(ctx context.Context, period analytics.Period) ([]analytics.RevenuePoint, error) {
	args := m.Called(ctx, period)
	if v := args.Get(0); v != nil {
		return v.([]analytics.RevenuePoint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyticsService) TopVendors(ctx context.Context, limit int) ([]analytics.TopVendor, error) {
	args := m.Called(ctx, limit)
	if v := args.Get(0); v != nil {
		return v.([]analytics.TopVendor), args.Error(1)
	}
	return nil, args.Error(1)
}
