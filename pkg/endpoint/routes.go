package endpoint

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/procyon-labs/identity-endpoints/pkg/identity"
)

// Attach mounts an identity management sub-router on parent. Every route
// registered through configure sits behind the baseline authorization
// policy: the caller must present a valid token verified by auth. The
// policy is not overridable; callers needing public routes register them
// outside the group.
func Attach(parent chi.Router, auth *jwtauth.JWTAuth, configure func(g chi.Router)) chi.Router {
	g := chi.NewRouter()
	g.Use(jwtauth.Verifier(auth))
	g.Use(jwtauth.Authenticator(auth))

	if configure != nil {
		configure(g)
	}

	parent.Mount("/", g)
	return g
}

// MountUsers registers the full default endpoint set for the built-in
// user type under /users, using the default mapper.
func MountUsers(g chi.Router, store identity.UserStore[identity.User]) {
	MountUsersWith(g, store, UserMapper{}, nil)
}

// MountUsersWith registers user endpoints under /users for a custom
// entity/request/response triple. configure selects which endpoints to
// register; nil registers the full default set.
func MountUsersWith[E, Req, Resp any](g chi.Router, store identity.UserStore[E], mapper DataMapper[E, Req, Resp], configure func(*UserEndpoints[E, Req, Resp])) {
	sub := chi.NewRouter()
	builder := NewUserEndpoints(sub, store, mapper)
	if configure != nil {
		configure(builder)
	} else {
		builder.MapAll()
	}
	g.Mount("/users", sub)
}

// MountRoles registers the full default endpoint set for the built-in
// role type under /roles, using the default mapper.
func MountRoles(g chi.Router, store identity.Store[identity.Role]) {
	MountRolesWith(g, store, RoleMapper{}, nil)
}

// MountRolesWith registers role endpoints under /roles for a custom
// entity/request/response triple. configure selects which endpoints to
// register; nil registers the full default set.
func MountRolesWith[E, Req, Resp any](g chi.Router, store identity.Store[E], mapper DataMapper[E, Req, Resp], configure func(*RoleEndpoints[E, Req, Resp])) {
	sub := chi.NewRouter()
	builder := NewRoleEndpoints(sub, store, mapper)
	if configure != nil {
		configure(builder)
	} else {
		builder.MapAll()
	}
	g.Mount("/roles", sub)
}
