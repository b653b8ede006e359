// Package endpoint is a composable HTTP endpoint layer for managing
// identity principals over an identity.Store. It provides the generic
// entity/request/response data mapper contract, per-resource route
// builders with individually selectable endpoints, a top-level composer
// that applies a baseline authorization requirement, and translation of
// store validation failures into a uniform 422 payload.
//
// # Basic Usage
//
//	users := identity.NewInMemoryUserStore()
//	roles := identity.NewInMemoryRoleStore()
//	tokenAuth := jwtauth.New("HS256", []byte(secret), nil)
//
//	r := chi.NewRouter()
//	endpoint.Attach(r, tokenAuth, func(g chi.Router) {
//		endpoint.MountUsers(g, users)
//		endpoint.MountRoles(g, roles)
//	})
//
// # Selecting Endpoints
//
// Each Map method on a route builder registers exactly one route;
// composition is additive and happens once, at mount time:
//
//	endpoint.MountUsersWith(g, store, endpoint.UserMapper{},
//		func(e *endpoint.UserEndpoints[identity.User, endpoint.UserRequest, endpoint.UserResponse]) {
//			e.MapList()
//			e.MapRead()
//		})
//
// # Custom Entity Types
//
// MountUsersWith and MountRolesWith accept any entity, request and
// response types together with a DataMapper between them, so callers can
// expose their own principal shapes without touching the route builders.
package endpoint
