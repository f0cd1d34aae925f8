package migrations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAutoMigrate(t *testing.T) {
	RetryDelay = 0

	t.Run("creates tables parents first", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatal(err)
		}
		defer db.Close()

		for _, name := range []string{"tbl_clientes", "tbl_fornecedores", "tbl_produtos", "tbl_carrinho", "tbl_pedido"} {
			mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + name).WillReturnResult(sqlmock.NewResult(0, 0))
		}

		if err := AutoMigrate(context.Background(), db, 0); err != nil {
			t.Fatalf("AutoMigrate returned error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("retries then succeeds", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatal(err)
		}
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS tbl_clientes").WillReturnError(errors.New("lock wait timeout"))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS tbl_clientes").WillReturnResult(sqlmock.NewResult(0, 0))
		for _, name := range []string{"tbl_fornecedores", "tbl_produtos", "tbl_carrinho", "tbl_pedido"} {
			mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + name).WillReturnResult(sqlmock.NewResult(0, 0))
		}

		if err := AutoMigrate(context.Background(), db, 2); err != nil {
			t.Fatalf("AutoMigrate returned error: %v", err)
		}
	})

	t.Run("gives up after retries", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatal(err)
		}
		defer db.Close()

		boom := errors.New("access denied")
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS tbl_clientes").WillReturnError(boom)
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS tbl_clientes").WillReturnError(boom)

		err = AutoMigrate(context.Background(), db, 1)
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped error, got %v", err)
		}
	})
}

func TestOrderDateStoredAsSent(t *testing.T) {
	for _, tbl := range tables {
		if tbl.name != "tbl_pedido" {
			continue
		}
		if !strings.Contains(tbl.query, "data_hora VARCHAR(") {
			t.Fatalf("data_hora must be a text column so it reads back unchanged:\n%s", tbl.query)
		}
		return
	}
	t.Fatal("tbl_pedido not declared")
}
