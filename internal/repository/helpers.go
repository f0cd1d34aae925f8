package repository

import (
	"context"
	"errors"

	"loja-service/internal/database"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func exists(ctx context.Context, gw *database.Gateway, query string, id int) (bool, error) {
	var found int
	err := gw.QueryRow(ctx, query, []any{id}, &found)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// update reports false when no row matched id. ErrNoFields is returned
// before any connection is taken.
func update(ctx context.Context, gw *database.Gateway, table string, allowed []string, fields map[string]any, id int) (bool, error) {
	query, args, err := database.BuildUpdate(table, allowed, fields, id)
	if err != nil {
		return false, err
	}
	res, err := gw.Exec(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return res.RowsAffected > 0, nil
}

func remove(ctx context.Context, gw *database.Gateway, query string, id int) (bool, error) {
	res, err := gw.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected > 0, nil
}
