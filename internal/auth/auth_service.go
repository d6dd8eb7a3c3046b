package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "github.com/code-hero23/peopledesk-sub002/internal/auth/errors"
	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type service struct {
	users  user.Repository
	tokens TokenConfig
	logger *zap.Logger
}

func NewService(users user.Repository, tokens TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if tokens.AccessTTL <= 0 {
		tokens.AccessTTL = 24 * time.Hour
	}
	if tokens.RefreshTTL <= 0 {
		tokens.RefreshTTL = 7 * 24 * time.Hour
	}
	return &service{users: users, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
		}
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		s.logger.Warn("login wrong password", zap.String("user_id", u.ID.String()))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if u.Status == domain.UserStatusBlocked {
		return "", "", AuthResponse{}, autherrors.ErrAccountBlocked
	}

	access, refresh, err := s.issuePair(u)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return access, refresh, toAuthResponse(u), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(s.tokens.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	if typ, _ := claims["typ"].(string); typ != tokenTypeRefresh {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userID, _ := claims["user_id"].(string)
	if _, err := uuid.Parse(userID); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}
	if u.Status == domain.UserStatusBlocked {
		return "", "", AuthResponse{}, autherrors.ErrAccountBlocked
	}

	access, refresh, err := s.issuePair(u)
	if err != nil {
		return "", "", AuthResponse{}, err
	}
	return access, refresh, toAuthResponse(u), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := toAuthResponse(u)
	return &resp, nil
}

func (s *service) issuePair(u *user.User) (string, string, error) {
	access, err := s.generateToken(u, tokenTypeAccess, s.tokens.AccessTTL)
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return "", "", autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.generateToken(u, tokenTypeRefresh, s.tokens.RefreshTTL)
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return "", "", autherrors.ErrTokenGenerationFailed
	}
	return access, refresh, nil
}

func (s *service) generateToken(u *user.User, typ string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     u.ID.String(),
		"role":        u.Role,
		"designation": u.Designation,
		"typ":         typ,
		"exp":         time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.tokens.Secret))
}

func toAuthResponse(u *user.User) AuthResponse {
	resp := AuthResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Designation: u.Designation,
	}
	if u.ReportingBhID != nil {
		id := u.ReportingBhID.String()
		resp.ReportingBhID = &id
	}
	return resp
}
