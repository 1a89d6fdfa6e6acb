package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput(fullName string) EmployeeInput {
	return EmployeeInput{
		FullName:   fullName,
		Username:   "jdoe",
		Email:      "jdoe@corp.com",
		Phone:      "555-0100",
		Department: "Engineering",
		Address:    "1 Main St",
	}
}

func TestEmployeeService_CreateAndGet(t *testing.T) {
	db := newTestDB(t, "empsvc_create")
	users := NewUserService(db)
	svc := NewEmployeeService(db)

	owner, err := users.CreateUser("A", "a@x.com", "secret1")
	require.NoError(t, err)

	id, err := svc.CreateEmployee(validInput("Jane Doe"), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := svc.GetEmployeeByIDAndOwner(id, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.FullName)
	assert.Equal(t, owner.ID, got.OwnerID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestEmployeeService_ListNewestFirst(t *testing.T) {
	db := newTestDB(t, "empsvc_order")
	users := NewUserService(db)
	svc := NewEmployeeService(db)

	owner, err := users.CreateUser("A", "a@x.com", "secret1")
	require.NoError(t, err)

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := svc.CreateEmployee(validInput(name), owner.ID)
		require.NoError(t, err)
	}

	list, err := svc.ListEmployeesByOwner(owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Third", list[0].FullName)
	assert.Equal(t, "Second", list[1].FullName)
	assert.Equal(t, "First", list[2].FullName)
}

func TestEmployeeService_OwnershipScoping(t *testing.T) {
	db := newTestDB(t, "empsvc_ownership")
	users := NewUserService(db)
	svc := NewEmployeeService(db)

	alice, err := users.CreateUser("Alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	bob, err := users.CreateUser("Bob", "bob@x.com", "secret2")
	require.NoError(t, err)

	id, err := svc.CreateEmployee(validInput("Owned By Alice"), alice.ID)
	require.NoError(t, err)

	// Bob never sees Alice's record
	list, err := svc.ListEmployeesByOwner(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// A foreign-owned id and a nonexistent id are indistinguishable
	_, err = svc.GetEmployeeByIDAndOwner(id, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetEmployeeByIDAndOwner(9999, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The owner still sees it
	got, err := svc.GetEmployeeByIDAndOwner(id, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestEmployeeService_ListEmptyIsNotNil(t *testing.T) {
	db := newTestDB(t, "empsvc_empty")
	users := NewUserService(db)
	svc := NewEmployeeService(db)

	owner, err := users.CreateUser("A", "a@x.com", "secret1")
	require.NoError(t, err)

	list, err := svc.ListEmployeesByOwner(owner.ID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
