package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// InMemoryUserStore implements UserStore using in-memory storage.
// Entities are returned as copies; callers never share memory with the
// store. Insertion order is the stable list order.
type InMemoryUserStore struct {
	mu     sync.RWMutex
	users  map[string]User     // id -> User
	order  []string            // insertion-ordered ids
	claims map[string][]Claim  // id -> claims
	roles  map[string][]string // id -> role names
}

// NewInMemoryUserStore creates a new in-memory user store.
func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users:  make(map[string]User),
		claims: make(map[string][]Claim),
		roles:  make(map[string][]string),
	}
}

// Create validates and stores a new user, assigning its id.
func (s *InMemoryUserStore) Create(ctx context.Context, entity *User) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entity.UserName == "" {
		return Failf(CodeInvalidUserName, "user name cannot be empty"), nil
	}
	for _, u := range s.users {
		if u.UserName == entity.UserName {
			return Failf(CodeDuplicateUserName, fmt.Sprintf("user name %q is already taken", entity.UserName)), nil
		}
		if entity.Email != "" && u.Email == entity.Email {
			return Failf(CodeDuplicateEmail, fmt.Sprintf("email %q is already taken", entity.Email)), nil
		}
	}

	entity.ID = uuid.NewString()
	s.users[entity.ID] = *entity
	s.order = append(s.order, entity.ID)
	return Ok(), nil
}

// FindByID retrieves a user by id.
func (s *InMemoryUserStore) FindByID(ctx context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// Update replaces the stored state of an existing user.
func (s *InMemoryUserStore) Update(ctx context.Context, entity *User) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[entity.ID]; !ok {
		return Result{}, ErrNotFound
	}
	if entity.UserName == "" {
		return Failf(CodeInvalidUserName, "user name cannot be empty"), nil
	}
	for id, u := range s.users {
		if id == entity.ID {
			continue
		}
		if u.UserName == entity.UserName {
			return Failf(CodeDuplicateUserName, fmt.Sprintf("user name %q is already taken", entity.UserName)), nil
		}
	}

	s.users[entity.ID] = *entity
	return Ok(), nil
}

// Delete removes a user and its claims and role memberships.
func (s *InMemoryUserStore) Delete(ctx context.Context, entity *User) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[entity.ID]; !ok {
		return Result{}, ErrNotFound
	}

	delete(s.users, entity.ID)
	delete(s.claims, entity.ID)
	delete(s.roles, entity.ID)
	for i, id := range s.order {
		if id == entity.ID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return Ok(), nil
}

// List returns users in insertion order, paged by skip/take.
func (s *InMemoryUserStore) List(ctx context.Context, skip, take int) ([]*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if skip < 0 {
		skip = 0
	}
	if skip >= len(s.order) || take <= 0 {
		return []*User{}, nil
	}
	end := skip + take
	if end > len(s.order) {
		end = len(s.order)
	}

	users := make([]*User, 0, end-skip)
	for _, id := range s.order[skip:end] {
		u := s.users[id]
		users = append(users, &u)
	}
	return users, nil
}

// GetClaims returns the claims attached to a user.
func (s *InMemoryUserStore) GetClaims(ctx context.Context, entity *User) ([]Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[entity.ID]; !ok {
		return nil, ErrNotFound
	}
	claims := make([]Claim, len(s.claims[entity.ID]))
	copy(claims, s.claims[entity.ID])
	return claims, nil
}

// AddClaim attaches a claim to a user. A claim with an empty type or
// value is rejected, as is an exact (type, value) duplicate.
func (s *InMemoryUserStore) AddClaim(ctx context.Context, entity *User, claim Claim) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[entity.ID]; !ok {
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

// RemoveClaim detaches a claim from a user. Removing an absent claim is
// a no-op success.
func (s *InMemoryUserStore) RemoveClaim(ctx context.Context, entity *User, claim Claim) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[entity.ID]; !ok {
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

// GetRoles returns the role names a user is a member of.
func (s *InMemoryUserStore) GetRoles(ctx context.Context, entity *User) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[entity.ID]; !ok {
		return nil, ErrNotFound
	}
	roles := make([]string, len(s.roles[entity.ID]))
	copy(roles, s.roles[entity.ID])
	return roles, nil
}

// AddToRoles adds a user to the named roles, one at a time, stopping at
// the first failure. Memberships added before the failure remain.
func (s *InMemoryUserStore) AddToRoles(ctx context.Context, entity *User, roles []string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[entity.ID]; !ok {
		return Result{}, ErrNotFound
	}
	for _, role := range roles {
		if role == "" {
			return Failf(CodeInvalidRoleName, "role name cannot be empty"), nil
		}
		if s.inRole(entity.ID, role) {
			return Failf(CodeUserAlreadyInRole, fmt.Sprintf("user is already in role %q", role)), nil
		}
		s.roles[entity.ID] = append(s.roles[entity.ID], role)
	}
	return Ok(), nil
}

// RemoveFromRoles removes a user from the named roles, one at a time,
// stopping at the first role the user is not a member of.
func (s *InMemoryUserStore) RemoveFromRoles(ctx context.Context, entity *User, roles []string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[entity.ID]; !ok {
		return Result{}, ErrNotFound
	}
	for _, role := range roles {
		if !s.inRole(entity.ID, role) {
			return Failf(CodeUserNotInRole, fmt.Sprintf("user is not in role %q", role)), nil
		}
		members := s.roles[entity.ID]
		for i, r := range members {
			if r == role {
				s.roles[entity.ID] = append(members[:i], members[i+1:]...)
				break
			}
		}
	}
	return Ok(), nil
}

func (s *InMemoryUserStore) inRole(id, role string) bool {
	for _, r := range s.roles[id] {
		if r == role {
			return true
		}
	}
	return false
}

// SeedUser adds a user directly, bypassing validation (for testing and
// initialization). Assigns an id if the user has none.
func (s *InMemoryUserStore) SeedUser(user User) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	s.users[user.ID] = user
	s.order = append(s.order, user.ID)
	return user
}
