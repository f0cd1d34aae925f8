package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type table struct {
	name  string
	query string
}

// tables are listed parents first so every foreign key target already exists.
var tables = []table{
	{"tbl_clientes", `
		CREATE TABLE IF NOT EXISTS tbl_clientes (
			id INT AUTO_INCREMENT PRIMARY KEY,
			nome VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			cpf VARCHAR(14) NOT NULL,
			senha VARCHAR(255) NOT NULL
		);
	`},
	{"tbl_fornecedores", `
		CREATE TABLE IF NOT EXISTS tbl_fornecedores (
			id INT AUTO_INCREMENT PRIMARY KEY,
			nome VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			cnpj VARCHAR(18) NOT NULL
		);
	`},
	{"tbl_produtos", `
		CREATE TABLE IF NOT EXISTS tbl_produtos (
			id INT AUTO_INCREMENT PRIMARY KEY,
			nome VARCHAR(255) NOT NULL,
			descricao TEXT NOT NULL,
			preco DOUBLE NOT NULL,
			qtd_em_estoque INT NOT NULL,
			fornecedor_id INT NOT NULL,
			custo_no_fornecedor DOUBLE NOT NULL,
			FOREIGN KEY (fornecedor_id) REFERENCES tbl_fornecedores(id)
		);
	`},
	{"tbl_carrinho", `
		CREATE TABLE IF NOT EXISTS tbl_carrinho (
			id INT AUTO_INCREMENT PRIMARY KEY,
			produto_id INT NOT NULL,
			quantidade INT NOT NULL,
			cliente_id INT NOT NULL,
			FOREIGN KEY (produto_id) REFERENCES tbl_produtos(id),
			FOREIGN KEY (cliente_id) REFERENCES tbl_clientes(id)
		);
	`},
	// data_hora is kept as the client sent it, so an order reads back unchanged.
	{"tbl_pedido", `
		CREATE TABLE IF NOT EXISTS tbl_pedido (
			id INT AUTO_INCREMENT PRIMARY KEY,
			cliente_id INT NOT NULL,
			carrinho_id INT NOT NULL,
			data_hora VARCHAR(32) NOT NULL,
			status VARCHAR(50) NOT NULL,
			FOREIGN KEY (cliente_id) REFERENCES tbl_clientes(id),
			FOREIGN KEY (carrinho_id) REFERENCES tbl_carrinho(id)
		);
	`},
}

// RetryDelay is the pause between attempts of a failed CREATE TABLE.
var RetryDelay = time.Second

// AutoMigrate creates the store tables that do not exist yet. Each statement
// is retried up to retries extra times before the error is returned.
func AutoMigrate(ctx context.Context, db *sql.DB, retries int) error {
	for _, t := range tables {
		_, err := db.ExecContext(ctx, t.query)
		for i := 0; err != nil && i < retries; i++ {
			log.Warn().Err(err).Str("table", t.name).Int("attempt", i+1).Msg("Retrying table creation")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(RetryDelay):
			}
			_, err = db.ExecContext(ctx, t.query)
		}
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.name, err)
		}
		log.Debug().Str("table", t.name).Msg("Table ready")
	}
	return nil
}
