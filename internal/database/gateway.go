package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Result carries what a mutating statement reports back.
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// Gateway runs one parameterized statement per call on a connection that is
// acquired for that call only and released before the call returns.
type Gateway struct {
	db *sql.DB
}

func NewGateway(db *sql.DB) *Gateway {
	return &Gateway{db: db}
}

func (g *Gateway) withConn(ctx context.Context, fn func(*sql.Conn) error) error {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer conn.Close()

	return classify(fn(conn))
}

// Exec runs an INSERT, UPDATE or DELETE. The server runs in autocommit mode,
// so the statement is committed when Exec returns without error.
func (g *Gateway) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	var out Result
	err := g.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if out.LastInsertID, err = res.LastInsertId(); err != nil {
			return err
		}
		out.RowsAffected, err = res.RowsAffected()
		return err
	})
	return out, err
}

// QueryRow scans a single row into dest and returns ErrNotFound when the
// query yields nothing.
func (g *Gateway) QueryRow(ctx context.Context, query string, args []any, dest ...any) error {
	return g.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, args...).Scan(dest...)
	})
}

// Query calls scan once per row while the connection is still held.
func (g *Gateway) Query(ctx context.Context, query string, args []any, scan func(*sql.Rows) error) error {
	return g.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			if err := scan(rows); err != nil {
				return err
			}
		}
		return rows.Err()
	})
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.withConn(ctx, func(conn *sql.Conn) error {
		return conn.PingContext(ctx)
	})
}
