package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/ofarias/inventario-api/pkg/sqlxutils"
	"github.com/ofarias/inventario-api/pkg/statistics"
)

type Request struct {
	ID      int    `db:"id" json:"id"`
	Method  string `db:"method" json:"method"`
	URL     string `db:"url" json:"url"`
	Body    string `db:"body" json:"body"`
	Headers string `db:"headers" json:"headers"`
}

type SqlxRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSqlxRepository(db *sqlx.DB, logger *slog.Logger) *SqlxRepository {
	return &SqlxRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SqlxRepository) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SqlxRepository) GetRequests(ctx context.Context) ([]Request, error) {
	reqs := make([]Request, 0)

	const cmd = `SELECT id, method, url, body, headers FROM requests;`

	err := sqlxutils.Select(ctx, r.db, &reqs, cmd)
	if errors.Is(err, sql.ErrNoRows) {
		return []Request{}, nil
	} else if err != nil {
		return nil, err
	}

	return reqs, nil
}

func (r *SqlxRepository) SaveRequest(ctx context.Context, req statistics.Request) error {
	const createCmd = `
	INSERT INTO requests (method, url, body, headers)
	VALUES ($1, $2, $3, $4);`

	_, err := r.db.ExecContext(ctx, createCmd, req.Method, req.URL, req.Body, req.Headers)
	if err != nil {
		return err
	}

	return nil
}
