package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/procyon-labs/identity-endpoints/pkg/identity"
)

// RoleStore implements identity.Store for the built-in role type over
// PostgreSQL.
type RoleStore struct {
	pool *pgxpool.Pool
}

// NewRoleStore creates a PostgreSQL-backed role store.
func NewRoleStore(pool *pgxpool.Pool) *RoleStore {
	return &RoleStore{pool: pool}
}

// Create inserts a new role, assigning its id.
func (s *RoleStore) Create(ctx context.Context, entity *identity.Role) (identity.Result, error) {
	if entity.Name == "" {
		return identity.Failf(identity.CodeInvalidRoleName, "role name cannot be empty"), nil
	}

	entity.ID = uuid.NewString()
	_, err := s.pool.Exec(ctx, `INSERT INTO roles (id, name) VALUES ($1, $2)`, entity.ID, entity.Name)
	if violatedConstraint(err) != "" {
		return identity.Failf(identity.CodeDuplicateRoleName, fmt.Sprintf("role name %q is already taken", entity.Name)), nil
	}
	if err != nil {
		return identity.Result{}, err
	}
	return identity.Ok(), nil
}

// FindByID retrieves a role by id. A malformed id resolves to nothing.
func (s *RoleStore) FindByID(ctx context.Context, id string) (*identity.Role, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, identity.ErrNotFound
	}

	var role identity.Role
	err := s.pool.QueryRow(ctx, `SELECT id, name FROM roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, identity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Update replaces the stored state of an existing role.
func (s *RoleStore) Update(ctx context.Context, entity *identity.Role) (identity.Result, error) {
	if entity.Name == "" {
		return identity.Failf(identity.CodeInvalidRoleName, "role name cannot be empty"), nil
	}

	tag, err := s.pool.Exec(ctx, `UPDATE roles SET name = $2 WHERE id = $1`, entity.ID, entity.Name)
	if violatedConstraint(err) != "" {
		return identity.Failf(identity.CodeDuplicateRoleName, fmt.Sprintf("role name %q is already taken", entity.Name)), nil
	}
	if err != nil {
		return identity.Result{}, err
	}
	if tag.RowsAffected() == 0 {
		return identity.Result{}, identity.ErrNotFound
	}
	return identity.Ok(), nil
}

// Delete removes a role; its claims cascade.
func (s *RoleStore) Delete(ctx context.Context, entity *identity.Role) (identity.Result, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, entity.ID)
	if err != nil {
		return identity.Result{}, err
	}
	if tag.RowsAffected() == 0 {
		return identity.Result{}, identity.ErrNotFound
	}
	return identity.Ok(), nil
}

// List returns roles in creation order, paged by skip/take.
func (s *RoleStore) List(ctx context.Context, skip, take int) ([]*identity.Role, error) {
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		return []*identity.Role{}, nil
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, name FROM roles
		ORDER BY created_at, id
		OFFSET $1 LIMIT $2`, skip, take)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []*identity.Role{}
	for rows.Next() {
		var role identity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, rows.Err()
}

// GetClaims returns the claims attached to a role.
func (s *RoleStore) GetClaims(ctx context.Context, entity *identity.Role) ([]identity.Claim, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT claim_type, claim_value FROM role_claims
		WHERE role_id = $1
		ORDER BY claim_type, claim_value`, entity.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claims := []identity.Claim{}
	for rows.Next() {
		var c identity.Claim
		if err := rows.Scan(&c.Type, &c.Value); err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

// AddClaim attaches a claim to a role.
func (s *RoleStore) AddClaim(ctx context.Context, entity *identity.Role, claim identity.Claim) (identity.Result, error) {
	if claim.Type == "" || claim.Value == "" {
		return identity.Failf(identity.CodeInvalidClaim, "claim type and value cannot be empty"), nil
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO role_claims (role_id, claim_type, claim_value)
		VALUES ($1, $2, $3)`, entity.ID, claim.Type, claim.Value)
	if violatedConstraint(err) != "" {
		return identity.Failf(identity.CodeDuplicateClaim, fmt.Sprintf("claim (%s, %s) already exists", claim.Type, claim.Value)), nil
	}
	if err != nil {
		return identity.Result{}, err
	}
	return identity.Ok(), nil
}

// RemoveClaim detaches a claim; removing an absent claim is a no-op
// success.
func (s *RoleStore) RemoveClaim(ctx context.Context, entity *identity.Role, claim identity.Claim) (identity.Result, error) {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM role_claims
		WHERE role_id = $1 AND claim_type = $2 AND claim_value = $3`,
		entity.ID, claim.Type, claim.Value)
	if err != nil {
		return identity.Result{}, err
	}
	return identity.Ok(), nil
}
