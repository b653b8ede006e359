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

// UserStore implements identity.UserStore for the built-in user type
// over PostgreSQL.
type UserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a PostgreSQL-backed user store.
func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

const userColumns = `id, user_name, email, email_confirmed, phone_number,
	phone_number_confirmed, two_factor_enabled, lockout_end, lockout_enabled`

func scanUser(row pgx.Row) (*identity.User, error) {
	var u identity.User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.EmailConfirmed, &u.PhoneNumber,
		&u.PhoneNumberConfirmed, &u.TwoFactorEnabled, &u.LockoutEnd, &u.LockoutEnabled)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user, assigning its id. Unique violations on
// user name or email become validation failures.
func (s *UserStore) Create(ctx context.Context, entity *identity.User) (identity.Result, error) {
	if entity.UserName == "" {
		return identity.Failf(identity.CodeInvalidUserName, "user name cannot be empty"), nil
	}

	entity.ID = uuid.NewString()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (id, user_name, email, email_confirmed, phone_number,
			phone_number_confirmed, two_factor_enabled, lockout_end, lockout_enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entity.ID, entity.UserName, entity.Email, entity.EmailConfirmed, entity.PhoneNumber,
		entity.PhoneNumberConfirmed, entity.TwoFactorEnabled, entity.LockoutEnd, entity.LockoutEnabled)
	switch violatedConstraint(err) {
	case "users_user_name_key":
		return identity.Failf(identity.CodeDuplicateUserName, fmt.Sprintf("user name %q is already taken", entity.UserName)), nil
	case "users_email_key":
		return identity.Failf(identity.CodeDuplicateEmail, fmt.Sprintf("email %q is already taken", entity.Email)), nil
	}
	if err != nil {
		return identity.Result{}, err
	}
	return identity.Ok(), nil
}

// FindByID retrieves a user by id. A malformed id resolves to nothing.
func (s *UserStore) FindByID(ctx context.Context, id string) (*identity.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, identity.ErrNotFound
	}

	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, identity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Update replaces the stored state of an existing user.
func (s *UserStore) Update(ctx context.Context, entity *identity.User) (identity.Result, error) {
	if entity.UserName == "" {
		return identity.Failf(identity.CodeInvalidUserName, "user name cannot be empty"), nil
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE users SET user_name = $2, email = $3, email_confirmed = $4,
			phone_number = $5, phone_number_confirmed = $6, two_factor_enabled = $7,
			lockout_end = $8, lockout_enabled = $9
		WHERE id = $1`,
		entity.ID, entity.UserName, entity.Email, entity.EmailConfirmed, entity.PhoneNumber,
		entity.PhoneNumberConfirmed, entity.TwoFactorEnabled, entity.LockoutEnd, entity.LockoutEnabled)
	switch violatedConstraint(err) {
	case "users_user_name_key":
		return identity.Failf(identity.CodeDuplicateUserName, fmt.Sprintf("user name %q is already taken", entity.UserName)), nil
	case "users_email_key":
		return identity.Failf(identity.CodeDuplicateEmail, fmt.Sprintf("email %q is already taken", entity.Email)), nil
	}
	if err != nil {
		return identity.Result{}, err
	}
	if tag.RowsAffected() == 0 {
		return identity.Result{}, identity.ErrNotFound
	}
	return identity.Ok(), nil
}

// Delete removes a user; claims and role memberships cascade.
func (s *UserStore) Delete(ctx context.Context, entity *identity.User) (identity.Result, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, entity.ID)
	if err != nil {
		return identity.Result{}, err
	}
	if tag.RowsAffected() == 0 {
		return identity.Result{}, identity.ErrNotFound
	}
	return identity.Ok(), nil
}

// List returns users in creation order, paged by skip/take.
func (s *UserStore) List(ctx context.Context, skip, take int) ([]*identity.User, error) {
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		return []*identity.User{}, nil
	}

	rows, err := s.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users
		ORDER BY created_at, id
		OFFSET $1 LIMIT $2`, skip, take)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*identity.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetClaims returns the claims attached to a user.
func (s *UserStore) GetClaims(ctx context.Context, entity *identity.User) ([]identity.Claim, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT claim_type, claim_value FROM user_claims
		WHERE user_id = $1
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

// AddClaim attaches a claim to a user.
func (s *UserStore) AddClaim(ctx context.Context, entity *identity.User, claim identity.Claim) (identity.Result, error) {
	if claim.Type == "" || claim.Value == "" {
		return identity.Failf(identity.CodeInvalidClaim, "claim type and value cannot be empty"), nil
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO user_claims (user_id, claim_type, claim_value)
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
func (s *UserStore) RemoveClaim(ctx context.Context, entity *identity.User, claim identity.Claim) (identity.Result, error) {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM user_claims
		WHERE user_id = $1 AND claim_type = $2 AND claim_value = $3`,
		entity.ID, claim.Type, claim.Value)
	if err != nil {
		return identity.Result{}, err
	}
	return identity.Ok(), nil
}

// GetRoles returns the role names a user is a member of.
func (s *UserStore) GetRoles(ctx context.Context, entity *identity.User) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT role_name FROM user_roles
		WHERE user_id = $1
		ORDER BY role_name`, entity.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		roles = append(roles, name)
	}
	return roles, rows.Err()
}

// AddToRoles adds a user to the named roles one at a time, stopping at
// the first failure; memberships added before the failure remain.
func (s *UserStore) AddToRoles(ctx context.Context, entity *identity.User, roles []string) (identity.Result, error) {
	for _, role := range roles {
		if role == "" {
			return identity.Failf(identity.CodeInvalidRoleName, "role name cannot be empty"), nil
		}
		_, err := s.pool.Exec(ctx, `
			INSERT INTO user_roles (user_id, role_name)
			VALUES ($1, $2)`, entity.ID, role)
		if violatedConstraint(err) != "" {
			return identity.Failf(identity.CodeUserAlreadyInRole, fmt.Sprintf("user is already in role %q", role)), nil
		}
		if err != nil {
			return identity.Result{}, err
		}
	}
	return identity.Ok(), nil
}

// RemoveFromRoles removes a user from the named roles one at a time,
// stopping at the first role the user is not a member of.
func (s *UserStore) RemoveFromRoles(ctx context.Context, entity *identity.User, roles []string) (identity.Result, error) {
	for _, role := range roles {
		tag, err := s.pool.Exec(ctx, `
			DELETE FROM user_roles
			WHERE user_id = $1 AND role_name = $2`, entity.ID, role)
		if err != nil {
			return identity.Result{}, err
		}
		if tag.RowsAffected() == 0 {
			return identity.Failf(identity.CodeUserNotInRole, fmt.Sprintf("user is not in role %q", role)), nil
		}
	}
	return identity.Ok(), nil
}
