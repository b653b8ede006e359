package identity

import "time"

// User is the built-in user principal. Entities are never serialized
// directly; the endpoint layer exposes them only through mapped response
// DTOs.
type User struct {
	ID                   string
	UserName             string
	Email                string
	EmailConfirmed       bool
	PhoneNumber          string
	PhoneNumberConfirmed bool
	TwoFactorEnabled     bool
	LockoutEnd           *time.Time
	LockoutEnabled       bool
}

// Role is the built-in role principal.
type Role struct {
	ID   string
	Name string
}
