package category

import (
	"context"
	"testing"

	"glowdesk-be/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, filter ListFilter) ([]*Category, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, c *Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockRepository) Update(ctx context.Context, c *Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(c *Category) bool {
			return c.Name == "Spa" && c.IsActive
		})).Return(nil)

		c, err := svc.Create(ctx, CreateCategoryInput{Name: "  Spa "})
		require.NoError(t, err)
		assert.Equal(t, "Spa", c.Name)
	})

	t.Run("Empty name", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, CreateCategoryInput{Name: " "})
		var verr validation.Errors
		assert.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("Create", ctx, mock.Anything).Return(ErrCategoryExists)

		_, err := svc.Create(ctx, CreateCategoryInput{Name: "Spa"})
		assert.ErrorIs(t, err, ErrCategoryExists)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("Deactivate", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, id).Return(&Category{ID: id, Name: "Spa", IsActive: true}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(c *Category) bool {
			return c.Name == "Spa" && !c.IsActive
		})).Return(nil)

		inactive := false
		c, err := svc.Update(ctx, id, UpdateCategoryInput{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, c.IsActive)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("GetByID", ctx, id).Return(nil, ErrCategoryNotFound)

		_, err := svc.Update(ctx, id, UpdateCategoryInput{})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestToListResponse(t *testing.T) {
	res := ToListResponse(nil, 0)
	assert.NotNil(t, res.Items)
	assert.Zero(t, res.Total)
}
