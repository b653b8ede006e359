package endpoint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/procyon-labs/identity-endpoints/pkg/identity"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUserMapperFromRequestIdempotent(t *testing.T) {
	end := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	req := &UserRequest{
		UserName:         strPtr("alice"),
		Email:            strPtr("alice@example.com"),
		EmailConfirmed:   boolPtr(true),
		TwoFactorEnabled: boolPtr(true),
		LockoutEnd:       &end,
		LockoutEnabled:   boolPtr(true),
	}

	mapper := UserMapper{}

	var once identity.User
	mapper.FromRequest(req, &once)

	var twice identity.User
	mapper.FromRequest(req, &twice)
	mapper.FromRequest(req, &twice)

	assert.Equal(t, once, twice)
}

func TestUserMapperNeverAssignsIdentity(t *testing.T) {
	entity := identity.User{ID: "assigned-by-store"}
	mapper := UserMapper{}

	mapper.FromRequest(&UserRequest{UserName: strPtr("alice")}, &entity)

	assert.Equal(t, "assigned-by-store", entity.ID)
	assert.Equal(t, "alice", entity.UserName)
}

func TestUserMapperSkipsNilFields(t *testing.T) {
	entity := identity.User{
		ID:             "id-1",
		UserName:       "alice",
		Email:          "alice@example.com",
		EmailConfirmed: true,
	}
	mapper := UserMapper{}

	mapper.FromRequest(&UserRequest{Email: strPtr("new@example.com")}, &entity)

	assert.Equal(t, "alice", entity.UserName)
	assert.Equal(t, "new@example.com", entity.Email)
	assert.True(t, entity.EmailConfirmed)
}

func TestUserMapperToResponse(t *testing.T) {
	end := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	entity := identity.User{
		ID:                   "id-1",
		UserName:             "alice",
		Email:                "alice@example.com",
		EmailConfirmed:       true,
		PhoneNumber:          "555-0100",
		PhoneNumberConfirmed: true,
		TwoFactorEnabled:     true,
		LockoutEnd:           &end,
		LockoutEnabled:       true,
	}

	var resp UserResponse
	UserMapper{}.ToResponse(&entity, &resp)

	assert.Equal(t, UserResponse{
		ID:                   "id-1",
		UserName:             "alice",
		Email:                "alice@example.com",
		EmailConfirmed:       true,
		PhoneNumber:          "555-0100",
		PhoneNumberConfirmed: true,
		TwoFactorEnabled:     true,
		LockoutEnd:           &end,
		LockoutEnabled:       true,
	}, resp)
}

func TestRoleMapper(t *testing.T) {
	mapper := RoleMapper{}

	var entity identity.Role
	mapper.FromRequest(&RoleRequest{Name: strPtr("editor")}, &entity)
	assert.Equal(t, identity.Role{Name: "editor"}, entity)

	entity.ID = "role-1"
	var resp RoleResponse
	mapper.ToResponse(&entity, &resp)
	assert.Equal(t, RoleResponse{ID: "role-1", Name: "editor"}, resp)
}

func TestConvenienceDerivations(t *testing.T) {
	mapper := UserMapper{}
	req := &UserRequest{UserName: strPtr("alice")}

	entity := EntityFromRequest[identity.User, UserRequest, UserResponse](mapper, req)

	var manual identity.User
	mapper.FromRequest(req, &manual)
	assert.Equal(t, manual, *entity)

	resp := ResponseFromEntity[identity.User, UserRequest, UserResponse](mapper, entity)
	assert.Equal(t, "alice", resp.UserName)
	assert.Empty(t, resp.ID)
}
