package endpoint

import (
	"time"

	"github.com/procyon-labs/identity-endpoints/pkg/identity"
)

// ClaimRequest is the wire shape for adding or removing a claim, shared
// by the user and role claim sub-resources.
type ClaimRequest struct {
	Type  *string `json:"type,omitempty"`
	Value *string `json:"value,omitempty"`
}

// ClaimResponse is the wire shape of a claim attached to a principal.
type ClaimResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// UserRequest carries the caller-settable fields of the built-in user.
// All fields are optional; nil fields are left untouched on update.
type UserRequest struct {
	UserName             *string    `json:"user_name,omitempty"`
	Email                *string    `json:"email,omitempty"`
	EmailConfirmed       *bool      `json:"email_confirmed,omitempty"`
	PhoneNumber          *string    `json:"phone_number,omitempty"`
	PhoneNumberConfirmed *bool      `json:"phone_number_confirmed,omitempty"`
	TwoFactorEnabled     *bool      `json:"two_factor_enabled,omitempty"`
	LockoutEnd           *time.Time `json:"lockout_end,omitempty"`
	LockoutEnabled       *bool      `json:"lockout_enabled,omitempty"`
}

// UserResponse is the externally exposed shape of the built-in user.
type UserResponse struct {
	ID                   string     `json:"id"`
	UserName             string     `json:"user_name"`
	Email                string     `json:"email"`
	EmailConfirmed       bool       `json:"email_confirmed"`
	PhoneNumber          string     `json:"phone_number"`
	PhoneNumberConfirmed bool       `json:"phone_number_confirmed"`
	TwoFactorEnabled     bool       `json:"two_factor_enabled"`
	LockoutEnd           *time.Time `json:"lockout_end,omitempty"`
	LockoutEnabled       bool       `json:"lockout_enabled"`
}

// RoleRequest carries the caller-settable fields of the built-in role.
type RoleRequest struct {
	Name *string `json:"name,omitempty"`
}

// RoleResponse is the externally exposed shape of the built-in role.
type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func claimFromRequest(req ClaimRequest) identity.Claim {
	var claim identity.Claim
	if req.Type != nil {
		claim.Type = *req.Type
	}
	if req.Value != nil {
		claim.Value = *req.Value
	}
	return claim
}
