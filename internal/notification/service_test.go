package notification

import (
	"context"
	"errors"
	"testing"

	"glowdesk-be/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, n *Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool) ([]*Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Notification), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Notification), args.Error(1)
}

func (m *MockRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func userCtx(id uint) context.Context {
	return utils.SetUserContext(context.Background(), id, "u@test.dev", utils.RoleUser)
}

func TestService_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores notification", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("Create", ctx, mock.MatchedBy(func(n *Notification) bool {
			return n.UserID == 5 && n.Kind == KindBookingCreated && n.Title == "New booking"
		})).Return(nil)

		svc.Notify(ctx, 5, KindBookingCreated, "New booking", "BK-1")
		repo.AssertExpectations(t)
	})

	t.Run("Store failure is swallowed", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

		assert.NotPanics(t, func() {
			svc.Notify(ctx, 5, KindPayoutStatus, "Payout paid", "")
		})
	})
}

func TestService_MarkRead(t *testing.T) {
	id := uuid.New()

	t.Run("Owner", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		ctx := userCtx(3)

		repo.On("GetByID", ctx, id).Return(&Notification{ID: id, UserID: 3}, nil)
		repo.On("MarkRead", ctx, id).Return(nil)

		n, err := svc.MarkRead(ctx, id)
		require.NoError(t, err)
		assert.True(t, n.IsRead)
	})

	t.Run("Already read", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		ctx := userCtx(3)

		repo.On("GetByID", ctx, id).Return(&Notification{ID: id, UserID: 3, IsRead: true}, nil)

		_, err := svc.MarkRead(ctx, id)
		require.NoError(t, err)
		repo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
	})

	t.Run("Someone else's", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		ctx := userCtx(3)

		repo.On("GetByID", ctx, id).Return(&Notification{ID: id, UserID: 4}, nil)

		_, err := svc.MarkRead(ctx, id)
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("Anonymous", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.MarkRead(context.Background(), id)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestService_ListAndMarkAll(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := userCtx(8)

	repo.On("ListByUser", ctx, uint(8), true).Return([]*Notification{{ID: uuid.New()}}, nil)
	repo.On("MarkAllRead", ctx, uint(8)).Return(int64(1), nil)

	list, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	n, err := svc.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
