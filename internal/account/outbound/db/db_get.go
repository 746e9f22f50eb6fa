package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/secureprop/internal/account/entity"
)

const selectAccount = `SELECT id, email, full_name, password_digest, created_at, updated_at FROM accounts`

func (s *DB) GetAccountByID(ctx context.Context, id int64) (_ *entity.AccountRow, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByID")
	defer func() { s.endSpan(span, err) }()

	return s.getOne(ctx, selectAccount+` WHERE id = $1`, id)
}

func (s *DB) GetAccountByEmail(ctx context.Context, email string) (_ *entity.AccountRow, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByEmail")
	defer func() { s.endSpan(span, err) }()

	return s.getOne(ctx, selectAccount+` WHERE email = $1`, email)
}

func (s *DB) getOne(ctx context.Context, query string, args ...any) (*entity.AccountRow, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, s.mapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entity.AccountRow])
	if err != nil {
		return nil, s.mapError(err)
	}

	return row, nil
}
