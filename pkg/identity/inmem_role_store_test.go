package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleStoreCreateValidation(t *testing.T) {
	store := NewInMemoryRoleStore()

	role := Role{Name: "admin"}
	res, err := store.Create(context.Background(), &role)
	require.NoError(t, err)
	require.True(t, res.Succeeded())
	require.NotEmpty(t, role.ID)

	res, err = store.Create(context.Background(), &Role{})
	require.NoError(t, err)
	require.False(t, res.Succeeded())
	assert.Equal(t, CodeInvalidRoleName, res.Errors[0].Code)

	res, err = store.Create(context.Background(), &Role{Name: "admin"})
	require.NoError(t, err)
	require.False(t, res.Succeeded())
	assert.Equal(t, CodeDuplicateRoleName, res.Errors[0].Code)
}

func TestRoleStoreUpdateRename(t *testing.T) {
	store := NewInMemoryRoleStore()
	admin := store.SeedRole(Role{Name: "admin"})
	editor := store.SeedRole(Role{Name: "editor"})

	editor.Name = "admin"
	res, err := store.Update(context.Background(), &editor)
	require.NoError(t, err)
	require.False(t, res.Succeeded())
	assert.Equal(t, CodeDuplicateRoleName, res.Errors[0].Code)

	// renaming a role to its own current name is allowed
	res, err = store.Update(context.Background(), &admin)
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
}

func TestRoleStoreDeleteRemovesClaims(t *testing.T) {
	store := NewInMemoryRoleStore()
	seeded := store.SeedRole(Role{Name: "admin"})

	_, err := store.AddClaim(context.Background(), &seeded, Claim{Type: "permission", Value: "users.manage"})
	require.NoError(t, err)

	res, err := store.Delete(context.Background(), &seeded)
	require.NoError(t, err)
	require.True(t, res.Succeeded())

	_, err = store.FindByID(context.Background(), seeded.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	store.SeedRole(seeded)
	claims, err := store.GetClaims(context.Background(), &seeded)
	require.NoError(t, err)
	assert.Empty(t, claims)
}

func TestRoleStoreListOrder(t *testing.T) {
	store := NewInMemoryRoleStore()
	store.SeedRole(Role{Name: "admin"})
	store.SeedRole(Role{Name: "editor"})
	store.SeedRole(Role{Name: "viewer"})

	roles, err := store.List(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "editor", roles[0].Name)
}

func TestRoleStoreClaimOpsOnMissingRole(t *testing.T) {
	store := NewInMemoryRoleStore()
	missing := Role{ID: "missing", Name: "ghost"}

	_, err := store.GetClaims(context.Background(), &missing)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.AddClaim(context.Background(), &missing, Claim{Type: "a", Value: "b"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.RemoveClaim(context.Background(), &missing, Claim{Type: "a", Value: "b"})
	assert.ErrorIs(t, err, ErrNotFound)
}
