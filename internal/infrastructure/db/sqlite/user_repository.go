package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trademindiq/trading-account/internal/core/domain"
)

// UserRepository reads account rows. Each call opens its own connection and
// closes it before returning.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findBy(ctx, "username", username)
}

// findBy looks an account up by one of the two unique columns. The column
// name is restricted to the callers above, never caller input.
func (r *UserRepository) findBy(ctx context.Context, column, value string) (*domain.User, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := fmt.Sprintf(`SELECT id, username, email, hashed_password,
		COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(role, ''), created_at
		FROM users WHERE %s = ?`, column)

	var u domain.User
	err = db.QueryRowContext(ctx, query, value).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Role, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by %s: %w", column, err)
	}
	return &u, nil
}
