package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// InMemoryRoleStore implements Store for roles using in-memory storage.
type InMemoryRoleStore struct {
	mu     sync.RWMutex
	roles  map[string]Role    // id -> Role
	order  []string           // insertion-ordered ids
	claims map[string][]Claim // id -> claims
}

// NewInMemoryRoleStore creates a new in-memory role store.
func NewInMemoryRoleStore() *InMemoryRoleStore {
	return &InMemoryRoleStore{
		roles:  make(map[string]Role),
		claims: make(map[string][]Claim),
	}
}

// Create validates and stores a new role, assigning its id.
func (s *InMemoryRoleStore) Create(ctx context.Context, entity *Role) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entity.Name == "" {
		return Failf(CodeInvalidRoleName, "role name cannot be empty"), nil
	}
	for _, r := range s.roles {
		if r.Name == entity.Name {
			return Failf(CodeDuplicateRoleName, fmt.Sprintf("role name %q is already taken", entity.Name)), nil
		}
	}

	entity.ID = uuid.NewString()
	s.roles[entity.ID] = *entity
	s.order = append(s.order, entity.ID)
	return Ok(), nil
}

// FindByID retrieves a role by id.
func (s *InMemoryRoleStore) FindByID(ctx context.Context, id string) (*Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.roles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

// Update replaces the stored state of an existing role.
func (s *InMemoryRoleStore) Update(ctx context.Context, entity *Role) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roles[entity.ID]; !ok {
		return Result{}, ErrNotFound
	}
	if entity.Name == "" {
		return Failf(CodeInvalidRoleName, "role name cannot be empty"), nil
	}
	for id, r := range s.roles {
		if id != entity.ID && r.Name == entity.Name {
			return Failf(CodeDuplicateRoleName, fmt.Sprintf("role name %q is already taken", entity.Name)), nil
		}
	}

	s.roles[entity.ID] = *entity
	return Ok(), nil
}

// Delete removes a role and its claims.
func (s *InMemoryRoleStore) Delete(ctx context.Context, entity *Role) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roles[entity.ID]; !ok {
		return Result{}, ErrNotFound
	}

	delete(s.roles, entity.ID)
	delete(s.claims, entity.ID)
	for i, id := range s.order {
		if id == entity.ID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return Ok(), nil
}

// List returns roles in insertion order, paged by skip/take.
func (s *InMemoryRoleStore) List(ctx context.Context, skip, take int) ([]*Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if skip < 0 {
		skip = 0
	}
	if skip >= len(s.order) || take <= 0 {
		return []*Role{}, nil
	}
	end := skip + take
	if end > len(s.order) {
		end = len(s.order)
	}

	roles := make([]*Role, 0, end-skip)
	for _, id := range s.order[skip:end] {
		r := s.roles[id]
		roles = append(roles, &r)
	}
	return roles, nil
}

// GetClaims returns the claims attached to a role.
func (s *InMemoryRoleStore) GetClaims(ctx context.Context, entity *Role) ([]Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.roles[entity.ID]; !ok {
		return nil, ErrNotFound
	}
	claims := make([]Claim, len(s.claims[entity.ID]))
	copy(claims, s.claims[entity.ID])
	return claims, nil
}

// AddClaim attaches a claim to a role, rejecting empty pairs and exact
// duplicates.
func (s *InMemoryRoleStore) AddClaim(ctx context.Context, entity *Role, claim Claim) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roles[entity.ID]; !ok {
		return Result{}, ErrNotFound
	}
	if claim.Type == "" || claim.Value == "" {
		return Failf(CodeInvalidClaim, "claim type and value cannot be empty"), nil
	}
	for _, c := range s.claims[entity.ID] {
		if c == claim {
			return Failf(CodeDuplicateClaim, fmt.Sprintf("claim (%s, %s) already exists", claim.Type, claim.Value)), nil
		}
	}

	s.claims[entity.ID] = append(s.claims[entity.ID], claim)
	return Ok(), nil
}

// RemoveClaim detaches a claim from a role; removing an absent claim is
// a no-op success.
func (s *InMemoryRoleStore) RemoveClaim(ctx context.Context, entity *Role, claim Claim) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roles[entity.ID]; !ok {
		return Result{}, ErrNotFound
	}
	claims := s.claims[entity.ID]
	for i, c := range claims {
		if c == claim {
			s.claims[entity.ID] = append(claims[:i], claims[i+1:]...)
			break
		}
	}
	return Ok(), nil
}

// SeedRole adds a role directly, bypassing validation (for testing and
// initialization). Assigns an id if the role has none.
func (s *InMemoryRoleStore) SeedRole(role Role) Role {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	s.roles[role.ID] = role
	s.order = append(s.order, role.ID)
	return role
}
