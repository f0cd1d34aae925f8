package repository

import (
	"context"
	"database/sql"

	"loja-service/internal/database"
	"loja-service/internal/entity"
)

var supplierColumns = []string{"nome", "email", "cnpj"}

type SupplierRepository struct {
	gw *database.Gateway
}

func NewSupplierRepository(gw *database.Gateway) *SupplierRepository {
	return &SupplierRepository{gw}
}

func (r *SupplierRepository) List(ctx context.Context) ([]entity.Supplier, error) {
	suppliers := []entity.Supplier{}
	query := `SELECT id, nome, email, cnpj FROM tbl_fornecedores`
	err := r.gw.Query(ctx, query, nil, func(rows *sql.Rows) error {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Nome, &s.Email, &s.CNPJ); err != nil {
			return err
		}
		suppliers = append(suppliers, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *SupplierRepository) Get(ctx context.Context, id int) (*entity.Supplier, error) {
	s := &entity.Supplier{}
	query := `SELECT id, nome, email, cnpj FROM tbl_fornecedores WHERE id = ?`
	if err := r.gw.QueryRow(ctx, query, []any{id}, &s.ID, &s.Nome, &s.Email, &s.CNPJ); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SupplierRepository) Create(ctx context.Context, s entity.Supplier) (int, error) {
	query := `INSERT INTO tbl_fornecedores (nome, email, cnpj) VALUES (?, ?, ?)`
	res, err := r.gw.Exec(ctx, query, s.Nome, s.Email, s.CNPJ)
	if err != nil {
		return 0, err
	}
	return int(res.LastInsertID), nil
}

func (r *SupplierRepository) Update(ctx context.Context, id int, fields map[string]any) (bool, error) {
	return update(ctx, r.gw, "tbl_fornecedores", supplierColumns, fields, id)
}

func (r *SupplierRepository) Delete(ctx context.Context, id int) (bool, error) {
	return remove(ctx, r.gw, `DELETE FROM tbl_fornecedores WHERE id = ?`, id)
}
