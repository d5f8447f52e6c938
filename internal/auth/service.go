package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers unknown email, wrong password and
	// deactivated accounts alike, so login failures do not leak which one it
	// was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountExists is returned when registering an email that is taken.
	ErrAccountExists = errors.New("account already exists")

	// ErrAccountNotFound is returned for operations on unknown accounts.
	ErrAccountNotFound = errors.New("account not found")
)

// Claims are the JWT claims carried by every issued token. TenantID is the
// sole partition key the rest of the system trusts.
type Claims struct {
	TenantID string `json:"tenant_id"`
	Role     Role   `json:"role"`
	jwt.RegisteredClaims
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"` // seconds
	TenantID  string `json:"tenant_id"`
	Role      Role   `json:"role"`
}

// Service resolves credentials to a tenant identifier and a role.
type Service struct {
	db       *gorm.DB
	secret   []byte
	issuer   string
	tokenTTL time.Duration
	logger   *slog.Logger
}

// NewService creates an authentication service.
func NewService(db *gorm.DB, secret, issuer string, tokenTTL time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if tokenTTL <= 0 {
		tokenTTL = 15 * time.Minute
	}
	return &Service{
		db:       db,
		secret:   []byte(secret),
		issuer:   issuer,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifies credentials and issues a signed token scoped to the
// account's tenant.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var account Account
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Info("login attempt for unknown account", slog.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if !account.Active {
		s.logger.Info("login attempt for inactive account", slog.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("login failed with wrong password", slog.String("email", email))
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(account)
	if err != nil {
		return nil, err
	}

	s.logger.Info("account logged in",
		slog.String("email", account.Email),
		slog.String("tenant_id", account.TenantID),
	)

	return &LoginResult{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(s.tokenTTL.Seconds()),
		TenantID:  account.TenantID,
		Role:      account.Role,
	}, nil
}

func (s *Service) generateToken(account Account) (string, error) {
	now := time.Now()
	claims := Claims{
		TenantID: account.TenantID,
		Role:     account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Error("failed to sign token", slog.String("error", err.Error()))
		return "", errors.New("failed to generate token")
	}
	return signed, nil
}

// VerifyToken parses and validates a token and returns its claims.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid || claims.TenantID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// CreateAccount registers a new login bound to a tenant.
func (s *Service) CreateAccount(ctx context.Context, email, password string, role Role, tenantID string) error {
	email = normalizeEmail(email)
	if email == "" || tenantID == "" {
		return errors.New("email and tenant id are required")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check account: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", ErrAccountExists, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", slog.String("error", err.Error()))
		return errors.New("failed to create account")
	}

	account := Account{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		TenantID:     tenantID,
		Active:       true,
	}
	if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account created",
		slog.String("email", email),
		slog.String("tenant_id", tenantID),
		slog.String("role", string(role)),
	)
	return nil
}

// ChangePassword verifies the old password and replaces the hash.
func (s *Service) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return errors.New("new password must be at least 8 characters")
	}

	email = normalizeEmail(email)
	var account Account
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, email)
	}
	if err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash new password", slog.String("error", err.Error()))
		return errors.New("failed to change password")
	}

	account.PasswordHash = string(hash)
	if err := s.db.WithContext(ctx).Save(&account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	s.logger.Info("password changed", slog.String("email", email))
	return nil
}

// ResetPassword overwrites the hash without checking the old one. Reserved
// for the admin CLI.
func (s *Service) ResetPassword(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < 8 {
		return errors.New("new password must be at least 8 characters")
	}

	email = normalizeEmail(email)
	var account Account
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, email)
	}
	if err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to reset password")
	}
	account.PasswordHash = string(hash)
	if err := s.db.WithContext(ctx).Save(&account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// DeleteAccount removes a login.
func (s *Service) DeleteAccount(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	result := s.db.WithContext(ctx).Where("email = ?", email).Delete(&Account{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, email)
	}
	return nil
}

// EnsureSuperadmin seeds the superadmin account on startup when no account
// with that role exists yet. Idempotent.
func (s *Service) EnsureSuperadmin(ctx context.Context, email, password, tenantID string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Account{}).Where("role = ?", RoleSuperadmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for superadmin: %w", err)
	}
	if count > 0 {
		return nil
	}

	email = normalizeEmail(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash superadmin password: %w", err)
	}

	account := Account{
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleSuperadmin,
		TenantID:     tenantID,
		Active:       true,
	}
	if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
		return fmt.Errorf("failed to seed superadmin: %w", err)
	}
	s.logger.Info("superadmin seeded", slog.String("email", email))
	return nil
}
