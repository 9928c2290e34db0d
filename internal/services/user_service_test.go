package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Madiha-Maha/AuroraMind-AI/internal/services"
)

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := services.NewUserService(db)

	id, err := svc.Register("demo@test.io", "pw123456", "Demo")
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	user, err := svc.Authenticate("demo@test.io", "pw123456")
	require.NoError(t, err)
	require.Equal(t, id, user.ID)
	require.Equal(t, "demo@test.io", user.Email)
	require.Equal(t, "Demo", user.Name)
	require.Empty(t, user.PasswordHash, "hash must not leave the service")
}

func TestUserService_PasswordNeverStoredPlaintext(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := services.NewUserService(db)

	_, err := svc.Register("demo@test.io", "pw123456", "Demo")
	require.NoError(t, err)

	var stored string
	require.NoError(t, db.QueryRow("SELECT password FROM users WHERE email = ?", "demo@test.io").Scan(&stored))
	require.NotEqual(t, "pw123456", stored)
	require.NotContains(t, stored, "pw123456")
}

func TestUserService_DuplicateEmail(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := services.NewUserService(db)

	_, err := svc.Register("demo@test.io", "pw123456", "Demo")
	require.NoError(t, err)

	_, err = svc.Register("demo@test.io", "otherpw", "Other")
	require.ErrorIs(t, err, services.ErrDuplicateEmail)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	require.Equal(t, 1, count)
}

func TestUserService_AuthenticateUnknownEmail(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := services.NewUserService(db)

	_, err := svc.Authenticate("nobody@test.io", "pw123456")
	require.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserService_AuthenticateWrongPassword(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := services.NewUserService(db)

	_, err := svc.Register("demo@test.io", "pw123456", "Demo")
	require.NoError(t, err)

	_, err = svc.Authenticate("demo@test.io", "wrong-password")
	require.ErrorIs(t, err, services.ErrInvalidPassword)
}
