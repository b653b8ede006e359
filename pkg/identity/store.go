package identity

import (
	"context"
	"errors"
)

// ErrNotFound is returned by store lookups when an id does not resolve
// to an existing principal.
var ErrNotFound = errors.New("principal not found")

// Claim is a (type, value) pair attached to a principal. Claims carry no
// identity of their own; uniqueness and removal are by exact match.
type Claim struct {
	Type  string
	Value string
}

// Store is the minimal principal store the endpoint layer consumes.
// Mutations return a Result describing validation failures; Go errors
// are reserved for transport problems. List is paged by the caller via
// skip/take and returns entities in the store's stable order.
type Store[E any] interface {
	Create(ctx context.Context, entity *E) (Result, error)
	FindByID(ctx context.Context, id string) (*E, error)
	Update(ctx context.Context, entity *E) (Result, error)
	Delete(ctx context.Context, entity *E) (Result, error)
	List(ctx context.Context, skip, take int) ([]*E, error)

	GetClaims(ctx context.Context, entity *E) ([]Claim, error)
	AddClaim(ctx context.Context, entity *E, claim Claim) (Result, error)
	RemoveClaim(ctx context.Context, entity *E, claim Claim) (Result, error)
}

// UserStore extends Store with role membership operations. Role
// membership is tracked by role name; the store decides whether names
// must resolve to managed Role records.
type UserStore[E any] interface {
	Store[E]

	GetRoles(ctx context.Context, entity *E) ([]string, error)
	AddToRoles(ctx context.Context, entity *E, roles []string) (Result, error)
	RemoveFromRoles(ctx context.Context, entity *E, roles []string) (Result, error)
}
