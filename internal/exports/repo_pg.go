package exports

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an export record.
func (r *PGRepo) Create(ctx context.Context, export Export) error {
	const query = `
INSERT INTO exports (
    id, user_id, session_id, template, format, pages, size_bytes, file_key, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		export.ID,
		export.UserID,
		export.SessionID,
		export.Template,
		export.Format,
		export.Pages,
		export.SizeBytes,
		nullString(export.FileKey),
		export.CreatedAt,
	)
	return err
}

// ListByUser lists exports ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Export, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, session_id, template, format, pages, size_bytes, file_key, created_at
FROM exports
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Export{}
	for rows.Next() {
		var (
			export  Export
			fileKey sql.NullString
		)
		if err := rows.Scan(
			&export.ID,
			&export.UserID,
			&export.SessionID,
			&export.Template,
			&export.Format,
			&export.Pages,
			&export.SizeBytes,
			&fileKey,
			&export.CreatedAt,
		); err != nil {
			return nil, err
		}
		export.FileKey = fileKey.String
		out = append(out, export)
	}
	return out, rows.Err()
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

var _ Repo = (*PGRepo)(nil)
