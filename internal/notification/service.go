package notification

import (
	"context"

	"glowdesk-be/internal/logger"
	"glowdesk-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier is the write side other domains depend on. Delivery is best
// effort: failures are logged and never reach the caller.
type Notifier interface {
	Notify(ctx context.Context, userID uint, kind Kind, title, body string)
}

type Service interface {
	Notifier
	List(ctx context.Context, unreadOnly bool) ([]*Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*Notification, error)
	MarkAllRead(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, userID uint, kind Kind, title, body string) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Notification"),
		zap.String("method", "Notify"),
		zap.Uint("recipient_id", userID),
		zap.String("kind", string(kind)),
	)

	n := &Notification{
		ID:     uuid.New(),
		UserID: userID,
		Kind:   kind,
		Title:  title,
		Body:   body,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Error("failed to store notification", zap.Error(err))
		return
	}
	log.Debug("notification stored", zap.String("notification_id", n.ID.String()))
}

func (s *service) List(ctx context.Context, unreadOnly bool) ([]*Notification, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	return s.repo.ListByUser(ctx, userID, unreadOnly)
}

func (s *service) MarkRead(ctx context.Context, id uuid.UUID) (*Notification, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, ErrNotAuthorized
	}
	if n.IsRead {
		return n, nil
	}

	if err := s.repo.MarkRead(ctx, id); err != nil {
		logger.FromCtx(ctx).Error("failed to mark notification read",
			zap.String("notification_id", id.String()), zap.Error(err))
		return nil, err
	}
	n.IsRead = true
	return n, nil
}

func (s *service) MarkAllRead(ctx context.Context) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}
	return s.repo.MarkAllRead(ctx, userID)
}
