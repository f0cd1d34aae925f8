package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"loja-service/internal/config"
)

func newMockGateway(t *testing.T) (*Gateway, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewGateway(db), mock, db
}

func TestGatewayExec(t *testing.T) {
	gw, mock, _ := newMockGateway(t)

	mock.ExpectExec("INSERT INTO tbl_clientes (nome, email, cpf, senha) VALUES (?, ?, ?, ?)").
		WithArgs("Ana", "a@x.com", "111", "s").
		WillReturnResult(sqlmock.NewResult(42, 1))

	res, err := gw.Exec(context.Background(), "INSERT INTO tbl_clientes (nome, email, cpf, senha) VALUES (?, ?, ?, ?)", "Ana", "a@x.com", "111", "s")
	if err != nil {
		t.Fatalf("Exec returned error: %v", err)
	}
	if res.LastInsertID != 42 || res.RowsAffected != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGatewayQueryRow(t *testing.T) {
	t.Run("row found", func(t *testing.T) {
		gw, mock, _ := newMockGateway(t)
		mock.ExpectQuery("SELECT qtd_em_estoque FROM tbl_produtos WHERE id = ?").
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"qtd_em_estoque"}).AddRow(10))

		var stock int
		if err := gw.QueryRow(context.Background(), "SELECT qtd_em_estoque FROM tbl_produtos WHERE id = ?", []any{3}, &stock); err != nil {
			t.Fatalf("QueryRow returned error: %v", err)
		}
		if stock != 10 {
			t.Fatalf("got stock %d want 10", stock)
		}
	})

	t.Run("no rows -> ErrNotFound", func(t *testing.T) {
		gw, mock, _ := newMockGateway(t)
		mock.ExpectQuery("SELECT id FROM tbl_clientes WHERE id = ?").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		var id int
		err := gw.QueryRow(context.Background(), "SELECT id FROM tbl_clientes WHERE id = ?", []any{99}, &id)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestGatewayQuery(t *testing.T) {
	gw, mock, _ := newMockGateway(t)
	mock.ExpectQuery("SELECT id FROM tbl_fornecedores").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(3))

	var ids []int
	err := gw.Query(context.Background(), "SELECT id FROM tbl_fornecedores", nil, func(rows *sql.Rows) error {
		var id int
		if err := rows.Scan(&id); err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(ids) != 3 || ids[2] != 3 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestGatewayConstraintViolation(t *testing.T) {
	gw, mock, _ := newMockGateway(t)
	mock.ExpectExec("DELETE FROM tbl_clientes WHERE id = ?").
		WithArgs(1).
		WillReturnError(&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"})

	_, err := gw.Exec(context.Background(), "DELETE FROM tbl_clientes WHERE id = ?", 1)
	if !errors.Is(err, ErrConstraint) {
		t.Fatalf("expected ErrConstraint, got %v", err)
	}
}

func TestGatewayClosedDatabase(t *testing.T) {
	gw, _, db := newMockGateway(t)
	db.Close()

	_, err := gw.Exec(context.Background(), "DELETE FROM tbl_clientes WHERE id = ?", 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConstraint) {
		t.Fatalf("unavailable must be distinct from other kinds: %v", err)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"bad conn", driver.ErrBadConn, ErrUnavailable},
		{"invalid conn", mysql.ErrInvalidConn, ErrUnavailable},
		{"network", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, ErrUnavailable},
		{"duplicate", &mysql.MySQLError{Number: 1062}, ErrConstraint},
		{"missing fk", &mysql.MySQLError{Number: 1452}, ErrConstraint},
		{"not null", &mysql.MySQLError{Number: 1048}, ErrConstraint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.in); !errors.Is(got, tc.want) {
				t.Fatalf("classify(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}

	t.Run("syntax error stays unclassified", func(t *testing.T) {
		in := &mysql.MySQLError{Number: 1064}
		got := classify(in)
		if errors.Is(got, ErrConstraint) || errors.Is(got, ErrUnavailable) || errors.Is(got, ErrNotFound) {
			t.Fatalf("unexpected classification: %v", got)
		}
	})

	if classify(nil) != nil {
		t.Fatal("classify(nil) should be nil")
	}
}

func TestDSN(t *testing.T) {
	cfg := config.DBConfig{Host: "localhost", User: "loja", Password: "s", Name: "db_estudo", Port: 3306}

	dsn, err := DSN(cfg)
	if err != nil {
		t.Fatalf("DSN returned error: %v", err)
	}
	if !strings.HasPrefix(dsn, "loja:s@tcp(localhost:3306)/db_estudo") {
		t.Fatalf("unexpected dsn: %s", dsn)
	}
	if !strings.Contains(dsn, "clientFoundRows=true") {
		t.Fatalf("clientFoundRows missing from dsn: %s", dsn)
	}
	if strings.Contains(dsn, "tls=") {
		t.Fatalf("tls should be off without a CA: %s", dsn)
	}

	t.Run("invalid CA file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ca.pem")
		if err := os.WriteFile(path, []byte("not a certificate"), 0o600); err != nil {
			t.Fatal(err)
		}
		cfg.SSLCA = path
		if _, err := DSN(cfg); err == nil {
			t.Fatal("expected error for a CA file without certificates")
		}
	})
}
