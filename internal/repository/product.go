package repository

import (
	"context"
	"database/sql"

	"loja-service/internal/database"
	"loja-service/internal/entity"
)

var productColumns = []string{"nome", "descricao", "preco", "qtd_em_estoque", "fornecedor_id", "custo_no_fornecedor"}

const productSelect = `SELECT id, nome, descricao, preco, qtd_em_estoque, fornecedor_id, custo_no_fornecedor FROM tbl_produtos`

type ProductRepository struct {
	gw *database.Gateway
}

func NewProductRepository(gw *database.Gateway) *ProductRepository {
	return &ProductRepository{gw}
}

func scanProduct(s scanner, p *entity.Product) error {
	return s.Scan(&p.ID, &p.Nome, &p.Descricao, &p.Preco, &p.QtdEmEstoque, &p.FornecedorID, &p.CustoNoFornecedor)
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	products := []entity.Product{}
	err := r.gw.Query(ctx, productSelect, nil, func(rows *sql.Rows) error {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return err
		}
		products = append(products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Get(ctx context.Context, id int) (*entity.Product, error) {
	p := &entity.Product{}
	err := r.gw.QueryRow(ctx, productSelect+` WHERE id = ?`, []any{id},
		&p.ID, &p.Nome, &p.Descricao, &p.Preco, &p.QtdEmEstoque, &p.FornecedorID, &p.CustoNoFornecedor)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Stock returns the recorded qtd_em_estoque, or database.ErrNotFound.
func (r *ProductRepository) Stock(ctx context.Context, id int) (int, error) {
	var stock int
	if err := r.gw.QueryRow(ctx, `SELECT qtd_em_estoque FROM tbl_produtos WHERE id = ?`, []any{id}, &stock); err != nil {
		return 0, err
	}
	return stock, nil
}

func (r *ProductRepository) Create(ctx context.Context, p entity.Product) (int, error) {
	query := `INSERT INTO tbl_produtos (nome, descricao, preco, qtd_em_estoque, fornecedor_id, custo_no_fornecedor) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.gw.Exec(ctx, query, p.Nome, p.Descricao, p.Preco, p.QtdEmEstoque, p.FornecedorID, p.CustoNoFornecedor)
	if err != nil {
		return 0, err
	}
	return int(res.LastInsertID), nil
}

func (r *ProductRepository) Update(ctx context.Context, id int, fields map[string]any) (bool, error) {
	return update(ctx, r.gw, "tbl_produtos", productColumns, fields, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id int) (bool, error) {
	return remove(ctx, r.gw, `DELETE FROM tbl_produtos WHERE id = ?`, id)
}
