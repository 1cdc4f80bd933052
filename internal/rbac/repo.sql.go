package rbac

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGRepository provides PostgreSQL backed persistence.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository bound to the given pool.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// GetUserGrants joins users -> roles -> role_permissions -> permissions and
// collapses the rows into a single grants record.
func (r *PGRepository) GetUserGrants(ctx context.Context, userID int64) (UserGrants, bool, error) {
	const query = `
		SELECT u.is_admin, u.role_id, p.name
		FROM users u
		LEFT JOIN roles r ON r.id = u.role_id
		LEFT JOIN role_permissions rp ON rp.role_id = r.id
		LEFT JOIN permissions p ON p.id = rp.permission_id
		WHERE u.id = $1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return UserGrants{}, false, err
	}
	defer rows.Close()

	var grants UserGrants
	found := false
	for rows.Next() {
		var roleID pgtype.Int8
		var permName pgtype.Text
		if err := rows.Scan(&grants.IsAdmin, &roleID, &permName); err != nil {
			return UserGrants{}, false, err
		}
		found = true
		if roleID.Valid {
			grants.HasRole = true
		}
		if permName.Valid {
			grants.Permissions = append(grants.Permissions, permName.String)
		}
	}
	if err := rows.Err(); err != nil {
		return UserGrants{}, false, err
	}
	return grants, found, nil
}

var _ Repository = (*PGRepository)(nil)
