package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/secureprop/internal/account/entity"
)

func (s *DB) CreateAccount(ctx context.Context, row entity.AccountRow) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO accounts (id, email, full_name, password_digest, created_at, updated_at)
		VALUES (@id, @email, @full_name, @password_digest, @created_at, @updated_at)`,
		pgx.NamedArgs{
			"id":              row.ID,
			"email":           row.Email,
			"full_name":       row.FullName,
			"password_digest": row.PasswordDigest,
			"created_at":      row.CreatedAt,
			"updated_at":      row.UpdatedAt,
		},
	)
	return s.mapError(err)
}

// UpdatePasswordDigest stores digest; nil writes SQL NULL.
func (s *DB) UpdatePasswordDigest(ctx context.Context, id int64, digest *string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdatePasswordDigest")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx,
		`UPDATE accounts SET password_digest = $2, updated_at = now() WHERE id = $1`,
		id, digest,
	)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return s.mapError(pgx.ErrNoRows)
	}

	return nil
}
