package endpoint

import (
	"github.com/procyon-labs/identity-endpoints/pkg/identity"
)

// UserMapper is the default mapper for the built-in user shapes. Nil
// request fields are skipped, so a default-constructed request is a
// no-op update. The entity id is never written from request data.
type UserMapper struct{}

func (UserMapper) FromRequest(src *UserRequest, dst *identity.User) {
	if src.UserName != nil {
		dst.UserName = *src.UserName
	}
	if src.Email != nil {
		dst.Email = *src.Email
	}
	if src.EmailConfirmed != nil {
		dst.EmailConfirmed = *src.EmailConfirmed
	}
	if src.PhoneNumber != nil {
		dst.PhoneNumber = *src.PhoneNumber
	}
	if src.PhoneNumberConfirmed != nil {
		dst.PhoneNumberConfirmed = *src.PhoneNumberConfirmed
	}
	if src.TwoFactorEnabled != nil {
		dst.TwoFactorEnabled = *src.TwoFactorEnabled
	}
	if src.LockoutEnd != nil {
		end := *src.LockoutEnd
		dst.LockoutEnd = &end
	}
	if src.LockoutEnabled != nil {
		dst.LockoutEnabled = *src.LockoutEnabled
	}
}

func (UserMapper) ToResponse(src *identity.User, dst *UserResponse) {
	dst.ID = src.ID
	dst.UserName = src.UserName
	dst.Email = src.Email
	dst.EmailConfirmed = src.EmailConfirmed
	dst.PhoneNumber = src.PhoneNumber
	dst.PhoneNumberConfirmed = src.PhoneNumberConfirmed
	dst.TwoFactorEnabled = src.TwoFactorEnabled
	dst.LockoutEnd = src.LockoutEnd
	dst.LockoutEnabled = src.LockoutEnabled
}

// RoleMapper is the default mapper for the built-in role shapes.
type RoleMapper struct{}

func (RoleMapper) FromRequest(src *RoleRequest, dst *identity.Role) {
	if src.Name != nil {
		dst.Name = *src.Name
	}
}

func (RoleMapper) ToResponse(src *identity.Role, dst *RoleResponse) {
	dst.ID = src.ID
	dst.Name = src.Name
}
