package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvelin/staffdesk-be/internal/database"
)

func newTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := database.New("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func TestUserService_SignupThenAuthenticate(t *testing.T) {
	db := newTestDB(t, "usersvc_roundtrip")
	svc := NewUserService(db)

	user, err := svc.CreateUser("A", "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "a@x.com", user.Email)

	// Stored hash must not be the plaintext
	stored, err := svc.GetUserByEmail("a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret1", stored.PasswordHash)

	authed, err := svc.AuthenticateUser("a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
	assert.Empty(t, authed.PasswordHash)
}

func TestUserService_DuplicateEmail(t *testing.T) {
	db := newTestDB(t, "usersvc_duplicate")
	svc := NewUserService(db)

	_, err := svc.CreateUser("A", "a@x.com", "secret1")
	require.NoError(t, err)

	// Same email, different password still conflicts
	_, err = svc.CreateUser("B", "a@x.com", "another")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_InvalidCredentials(t *testing.T) {
	db := newTestDB(t, "usersvc_badcreds")
	svc := NewUserService(db)

	_, err := svc.CreateUser("A", "a@x.com", "secret1")
	require.NoError(t, err)

	// Wrong password and unknown email fail identically
	_, err = svc.AuthenticateUser("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AuthenticateUser("nobody@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_UniqueConstraintBackstop(t *testing.T) {
	db := newTestDB(t, "usersvc_constraint")
	svc := NewUserService(db)

	_, err := svc.CreateUser("A", "a@x.com", "secret1")
	require.NoError(t, err)

	// Simulate a sign-up that raced past the pre-check by inserting directly.
	_, err = db.Exec("INSERT INTO users(full_name, email, password_hash) VALUES(?, ?, ?)", "B", "a@x.com", "hash")
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))
}
