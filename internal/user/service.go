package user

import (
	"context"
	"errors"
	"strings"

	"glowdesk-be/internal/auth"
	"glowdesk-be/internal/logger"
	"glowdesk-be/internal/utils"
	"glowdesk-be/internal/validation"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (string, *User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	Me(ctx context.Context) (*User, error)
	UpdateRole(ctx context.Context, userID uint, role string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(
	ctx context.Context,
	input RegisterInput,
) (string, *User, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "User"),
		zap.String("method", "Register"),
	)

	name := strings.TrimSpace(input.Name)
	email := utils.NormalizeEmail(input.Email)

	var v validation.Errors
	v.Required("name", name, 100)
	if !validation.IsEmail(email) {
		v.Add("email", "email is invalid")
	}
	if len(input.Password) < minPasswordLen {
		v.Add("password", "password must be at least 8 characters")
	}
	if err := v.Err(); err != nil {
		return "", nil, err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u, err := s.repo.Create(ctx, name, email, hashed, utils.RoleUser)
	if err != nil {
		return "", nil, err
	}

	token, err := auth.GenerateJWT(u.ID, u.Role, u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.Uint("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("user registered", zap.Uint("user_id", u.ID))
	return token, u, nil
}

func (s *service) Login(
	ctx context.Context,
	email, password string,
) (string, *User, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "User"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Info("login with unknown email")
			return "", nil, ErrInvalidCredentials
		}
		log.Error("failed to load user", zap.Error(err))
		return "", nil, err
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		log.Info("password mismatch", zap.Uint("user_id", u.ID))
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID, u.Role, u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.Error(err))
		return "", nil, err
	}

	return token, u, nil
}

func (s *service) Me(ctx context.Context) (*User, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	return s.repo.FindByID(ctx, userID)
}

func (s *service) UpdateRole(ctx context.Context, userID uint, role string) error {
	switch role {
	case utils.RoleUser, utils.RoleVendor, utils.RoleAdmin:
	default:
		return ErrInvalidRole
	}
	return s.repo.UpdateRole(ctx, userID, role)
}
