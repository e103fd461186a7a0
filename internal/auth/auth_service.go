package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "jobtrack/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, TokenPair, error)
	Login(ctx context.Context, email, password string) (AuthResponse, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (AuthResponse, TokenPair, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, TokenPair, error) {
	s.logger.Debug("register requested", zap.String("email", req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, TokenPair{}, err
	}

	user := &User{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashed),
		IsActive:  true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Warn("register persist failed", zap.String("email", req.Email), zap.Error(err))
		return AuthResponse{}, TokenPair{}, mapRepositoryError(err)
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return AuthResponse{}, TokenPair{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("register success", zap.String("user_id", user.ID.String()))
	return mapToAuthResponse(user), pair, nil
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return AuthResponse{}, TokenPair{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return AuthResponse{}, TokenPair{}, autherrors.ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return AuthResponse{}, TokenPair{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()))
	return mapToAuthResponse(user), pair, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (AuthResponse, TokenPair, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return AuthResponse{}, TokenPair{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return AuthResponse{}, TokenPair{}, autherrors.ErrInvalidToken
	}
	if typ, _ := claims["type"].(string); typ != "refresh" {
		return AuthResponse{}, TokenPair{}, autherrors.ErrInvalidRefreshToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return AuthResponse{}, TokenPair{}, autherrors.ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return AuthResponse{}, TokenPair{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return AuthResponse{}, TokenPair{}, autherrors.ErrUserNotFound
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return AuthResponse{}, TokenPair{}, autherrors.ErrTokenGenerationFailed
	}

	return mapToAuthResponse(user), pair, nil
}

func (s *service) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = UserResponse{
			ID:        u.ID.String(),
			Username:  u.Username,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			IsStaff:   u.IsStaff,
		}
	}
	return resp, nil
}

func (s *service) issueTokenPair(user *User) (TokenPair, error) {
	access, err := generateToken(user, "access", accessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := generateToken(user, "refresh", refreshTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func generateToken(user *User, tokenType string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"type":    tokenType,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToAuthResponse(user *User) AuthResponse {
	return AuthResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
	}
}

// Duplicate email/username surfaces as a validation failure, not a 500.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "username") {
			return autherrors.ErrUsernameAlreadyTaken
		}
		return autherrors.ErrEmailAlreadyRegistered
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "username") {
			return autherrors.ErrUsernameAlreadyTaken
		}
		return autherrors.ErrEmailAlreadyRegistered
	}

	return err
}
