package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := New("file:db_idempotent?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := New("file:db_fk?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))

	// An employee row must reference an existing user
	_, err = db.Exec(`INSERT INTO employees (full_name, username, email, phone, department, address, user_id)
		VALUES ('J', 'j', 'j@x.com', '555', 'Eng', '1 Main St', 999)`)
	assert.Error(t, err)
}
