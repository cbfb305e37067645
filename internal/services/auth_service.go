package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"backoffice/internal/config"
	"backoffice/internal/dto"
	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
)

// authService handles operator authentication
type authService struct {
	userRepo repositories.UserRepositoryInterface
	jwtCfg   config.JWTConfig
	bcryptCost int
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

// NewAuthService creates an authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cfg *config.Config,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &authService{
		userRepo:   userRepo,
		jwtCfg:     cfg.JWT,
		bcryptCost: cfg.Security.BCryptCost,
		metrics:    metrics,
		logger:     logger,
	}
}

// Login authenticates an operator and issues an access token
func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.RecordLogin("failed")
			// Same error for unknown email and wrong password
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.metrics.RecordLogin("failed")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		s.logger.Warn("failed to stamp last login", "userId", user.ID, "error", err)
	}

	s.metrics.RecordLogin("success")
	s.logger.Info("operator logged in", "userId", user.ID, "role", user.Role)

	return &dto.LoginResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
		},
		User: dto.UserProfileResponse{
			ID:          user.ID.String(),
			Email:       user.Email,
			FullName:    user.FullName,
			Role:        user.Role,
			BranchID:    user.BranchID,
			LastLoginAt: user.LastLoginAt,
		},
	}, nil
}

// ValidateToken parses and verifies an access token
func (s *authService) ValidateToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// CreateUser registers an operator account with a hashed password
func (s *authService) CreateUser(email, password, fullName, role string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrEmailExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *authService) issueToken(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.jwtCfg.AccessTokenDuration)

	claims := &TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtCfg.Issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
