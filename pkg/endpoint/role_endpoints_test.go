package endpoint

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procyon-labs/identity-endpoints/pkg/identity"
)

func newRoleRouter(store identity.Store[identity.Role]) chi.Router {
	r := chi.NewRouter()
	MountRoles(r, store)
	return r
}

func TestCreateRole(t *testing.T) {
	r := newRoleRouter(identity.NewInMemoryRoleStore())

	rec := doJSON(t, r, "POST", "/roles", RoleRequest{Name: strPtr("admin")})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[RoleResponse](t, rec)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "admin", resp.Name)
}

func TestCreateRoleDuplicateName(t *testing.T) {
	store := identity.NewInMemoryRoleStore()
	store.SeedRole(identity.Role{Name: "admin"})
	r := newRoleRouter(store)

	rec := doJSON(t, r, "POST", "/roles", RoleRequest{Name: strPtr("admin")})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	problem := decodeBody[ValidationProblem](t, rec)
	assert.NotEmpty(t, problem.Errors[identity.CodeDuplicateRoleName])
}

func TestCreateRoleEmptyName(t *testing.T) {
	r := newRoleRouter(identity.NewInMemoryRoleStore())

	rec := doJSON(t, r, "POST", "/roles", RoleRequest{})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	problem := decodeBody[ValidationProblem](t, rec)
	assert.NotEmpty(t, problem.Errors[identity.CodeInvalidRoleName])
}

func TestListRoles(t *testing.T) {
	store := identity.NewInMemoryRoleStore()
	store.SeedRole(identity.Role{Name: "admin"})
	store.SeedRole(identity.Role{Name: "editor"})
	r := newRoleRouter(store)

	rec := doJSON(t, r, "GET", "/roles", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	roles := decodeBody[[]RoleResponse](t, rec)
	require.Len(t, roles, 2)
	assert.Equal(t, "admin", roles[0].Name)
	assert.Equal(t, "editor", roles[1].Name)
}

func TestRoleReadUpdateDelete(t *testing.T) {
	store := identity.NewInMemoryRoleStore()
	seeded := store.SeedRole(identity.Role{Name: "admin"})
	r := newRoleRouter(store)

	rec := doJSON(t, r, "GET", "/roles/"+seeded.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", decodeBody[RoleResponse](t, rec).Name)

	rec = doJSON(t, r, "PUT", "/roles/"+seeded.ID, RoleRequest{Name: strPtr("administrator")})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "GET", "/roles/"+seeded.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "administrator", decodeBody[RoleResponse](t, rec).Name)

	rec = doJSON(t, r, "DELETE", "/roles/"+seeded.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "GET", "/roles/"+seeded.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoleNotFound(t *testing.T) {
	r := newRoleRouter(identity.NewInMemoryRoleStore())

	rec := doJSON(t, r, "GET", "/roles/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, "DELETE", "/roles/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoleClaims(t *testing.T) {
	store := identity.NewInMemoryRoleStore()
	seeded := store.SeedRole(identity.Role{Name: "admin"})
	r := newRoleRouter(store)

	rec := doJSON(t, r, "POST", "/roles/"+seeded.ID+"/claims", []ClaimRequest{
		{Type: strPtr("permission"), Value: strPtr("users.manage")},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "GET", "/roles/"+seeded.ID+"/claims", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []ClaimResponse{{Type: "permission", Value: "users.manage"}}, decodeBody[[]ClaimResponse](t, rec))

	rec = doJSON(t, r, "POST", "/roles/"+seeded.ID+"/claims", []ClaimRequest{
		{Type: strPtr("permission"), Value: strPtr("users.manage")},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	problem := decodeBody[ValidationProblem](t, rec)
	assert.NotEmpty(t, problem.Errors[identity.CodeDuplicateClaim])

	rec = doJSON(t, r, "DELETE", "/roles/"+seeded.ID+"/claims", []ClaimRequest{
		{Type: strPtr("permission"), Value: strPtr("users.manage")},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "GET", "/roles/"+seeded.ID+"/claims", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]ClaimResponse](t, rec))
}

func TestMountRolesWithEndpointSelection(t *testing.T) {
	store := identity.NewInMemoryRoleStore()
	seeded := store.SeedRole(identity.Role{Name: "admin"})

	r := chi.NewRouter()
	MountRolesWith(r, store, RoleMapper{}, func(e *RoleEndpoints[identity.Role, RoleRequest, RoleResponse]) {
		e.MapList()
		e.MapRead()
	})

	rec := doJSON(t, r, "GET", "/roles", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "GET", "/roles/"+seeded.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "POST", "/roles", RoleRequest{Name: strPtr("editor")})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
