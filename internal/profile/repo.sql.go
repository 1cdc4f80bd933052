package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vantage-invest/vantage-admin/internal/shared"
)

// PGRepository provides PostgreSQL backed persistence.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository bound to the given pool.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// GetProfile fetches a user joined with role and branch.
func (r *PGRepository) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	const query = `
		SELECT u.id, u.name, u.email, u.is_admin, u.created_at,
			r.id, r.name,
			b.id, b.name
		FROM users u
		LEFT JOIN roles r ON r.id = u.role_id
		LEFT JOIN branches b ON b.id = u.branch_id
		WHERE u.id = $1`

	var p Profile
	var roleID pgtype.Int8
	var roleName pgtype.Text
	var branchID pgtype.Int8
	var branchName pgtype.Text
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.Name, &p.Email, &p.IsAdmin, &p.CreatedAt,
		&roleID, &roleName,
		&branchID, &branchName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if roleID.Valid {
		p.Role = &Role{ID: roleID.Int64, Name: roleName.String}
	}
	if branchID.Valid {
		p.Branch = &Branch{ID: branchID.Int64, Name: branchName.String}
	}
	return &p, nil
}

// GetCredentials fetches the stored password hash for a user.
func (r *PGRepository) GetCredentials(ctx context.Context, userID int64) (*Credentials, error) {
	const query = `SELECT id, password_hash FROM users WHERE id = $1`

	var creds Credentials
	err := r.pool.QueryRow(ctx, query, userID).Scan(&creds.UserID, &creds.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &creds, nil
}

// UpdatePassword stores a new password hash. Returns ErrNotFound when no row
// was updated.
func (r *PGRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
