package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	require.NoError(t, db.AutoMigrate(&Account{}))

	return NewService(db, "test-secret", "hoteldesk-test", time.Minute, nil)
}

func TestCreateAccountAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateAccount(ctx, "Desk@Hotel.example", "correct-horse", RoleCustomer, "hotel-1"))

	// Email matching is case-insensitive.
	result, err := svc.Login(ctx, "desk@hotel.EXAMPLE", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "hotel-1", result.TenantID)
	assert.Equal(t, RoleCustomer, result.Role)
	assert.Equal(t, "Bearer", result.TokenType)

	claims, err := svc.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "hotel-1", claims.TenantID)
	assert.Equal(t, RoleCustomer, claims.Role)
	assert.Equal(t, "desk@hotel.example", claims.Subject)
}

func TestLoginFailures(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateAccount(ctx, "desk@hotel.example", "correct-horse", RoleCustomer, "hotel-1"))

	_, err := svc.Login(ctx, "desk@hotel.example", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@hotel.example", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Deactivated accounts cannot log in even with the right password.
	require.NoError(t, svc.db.Model(&Account{}).
		Where("email = ?", "desk@hotel.example").
		Update("active", false).Error)
	_, err = svc.Login(ctx, "desk@hotel.example", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDuplicateAccountRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateAccount(ctx, "desk@hotel.example", "correct-horse", RoleCustomer, "hotel-1"))
	err := svc.CreateAccount(ctx, "DESK@hotel.example", "another-pass", RoleCustomer, "hotel-2")
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestShortPasswordRejected(t *testing.T) {
	svc := newTestService(t)

	err := svc.CreateAccount(context.Background(), "desk@hotel.example", "short", RoleCustomer, "hotel-1")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsForeignSignature(t *testing.T) {
	svc := newTestService(t)
	other := newTestService(t)
	// Same account on both, but tokens must not transfer between secrets.
	otherSigned := NewService(other.db, "other-secret", "hoteldesk-test", time.Minute, nil)

	ctx := context.Background()
	require.NoError(t, otherSigned.CreateAccount(ctx, "desk@hotel.example", "correct-horse", RoleCustomer, "hotel-1"))
	result, err := otherSigned.Login(ctx, "desk@hotel.example", "correct-horse")
	require.NoError(t, err)

	_, err = svc.VerifyToken(result.Token)
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateAccount(ctx, "desk@hotel.example", "correct-horse", RoleCustomer, "hotel-1"))

	err := svc.ChangePassword(ctx, "desk@hotel.example", "wrong", "brand-new-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(ctx, "desk@hotel.example", "correct-horse", "brand-new-pass"))

	_, err = svc.Login(ctx, "desk@hotel.example", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "desk@hotel.example", "brand-new-pass")
	assert.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateAccount(ctx, "desk@hotel.example", "correct-horse", RoleCustomer, "hotel-1"))
	require.NoError(t, svc.DeleteAccount(ctx, "desk@hotel.example"))

	err := svc.DeleteAccount(ctx, "desk@hotel.example")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestEnsureSuperadminIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureSuperadmin(ctx, "admin@system.local", "admin-pass-123", "superadmin"))
	require.NoError(t, svc.EnsureSuperadmin(ctx, "admin@system.local", "admin-pass-123", "superadmin"))

	var count int64
	require.NoError(t, svc.db.Model(&Account{}).Where("role = ?", RoleSuperadmin).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	result, err := svc.Login(ctx, "admin@system.local", "admin-pass-123")
	require.NoError(t, err)
	assert.Equal(t, RoleSuperadmin, result.Role)
}
