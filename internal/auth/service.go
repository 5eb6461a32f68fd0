package auth

import (
	"context"

	"resto-admin-be/internal/config"
	"resto-admin-be/internal/logger"

	"go.uber.org/zap"
)

// Service checks the configured admin credentials and issues session
// tokens for the back-office UI.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{cfg: cfg}
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
		zap.String("username", username),
	)

	if username != s.cfg.AdminUser || !CheckPasswordHash(password, s.cfg.AdminPasswordHash) {
		log.Warn("login rejected")
		return "", ErrInvalidCredentials
	}

	token, err := GenerateToken(s.cfg.JWTSecret, username)
	if err != nil {
		log.Error("token generation failed", zap.Error(err))
		return "", err
	}

	log.Info("login succeeded")
	return token, nil
}
