package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tbanda/vendora-backend/internal/apperr"
	"github.com/tbanda/vendora-backend/internal/platform/database"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL profile repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetUser(ctx context.Context, id int64, defaultPfp string) (*User, error) {
	user := &User{}
	query := `
		SELECT user_id, first_name, last_name, email, role, COALESCE(pfp_path, $2)
		FROM users
		WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id, defaultPfp).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Role,
		&user.Pfp,
	)
	if err != nil {
		return nil, database.Classify(err)
	}
	return user, nil
}

func (r *postgresRepository) UpdatePfp(ctx context.Context, id int64, ref string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET pfp_path = $2 WHERE user_id = $1`, id, ref)
	if err != nil {
		return database.Classify(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
