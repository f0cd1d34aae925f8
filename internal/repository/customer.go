package repository

import (
	"context"
	"database/sql"

	"loja-service/internal/database"
	"loja-service/internal/entity"
)

// customerColumns is the update allowlist, in SET-clause order.
var customerColumns = []string{"nome", "email", "cpf", "senha"}

type CustomerRepository struct {
	gw *database.Gateway
}

func NewCustomerRepository(gw *database.Gateway) *CustomerRepository {
	return &CustomerRepository{gw}
}

func scanCustomer(s scanner, c *entity.Customer) error {
	return s.Scan(&c.ID, &c.Nome, &c.Email, &c.CPF, &c.Senha)
}

func (r *CustomerRepository) List(ctx context.Context) ([]entity.Customer, error) {
	customers := []entity.Customer{}
	query := `SELECT id, nome, email, cpf, senha FROM tbl_clientes`
	err := r.gw.Query(ctx, query, nil, func(rows *sql.Rows) error {
		var c entity.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return err
		}
		customers = append(customers, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) Get(ctx context.Context, id int) (*entity.Customer, error) {
	c := &entity.Customer{}
	query := `SELECT id, nome, email, cpf, senha FROM tbl_clientes WHERE id = ?`
	if err := r.gw.QueryRow(ctx, query, []any{id}, &c.ID, &c.Nome, &c.Email, &c.CPF, &c.Senha); err != nil {
		return nil, err
	}
	return c, nil
}

// Exists reports whether a customer with id is present.
func (r *CustomerRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.gw, `SELECT id FROM tbl_clientes WHERE id = ?`, id)
}

func (r *CustomerRepository) Create(ctx context.Context, c entity.Customer) (int, error) {
	query := `INSERT INTO tbl_clientes (nome, email, cpf, senha) VALUES (?, ?, ?, ?)`
	res, err := r.gw.Exec(ctx, query, c.Nome, c.Email, c.CPF, c.Senha)
	if err != nil {
		return 0, err
	}
	return int(res.LastInsertID), nil
}

func (r *CustomerRepository) Update(ctx context.Context, id int, fields map[string]any) (bool, error) {
	return update(ctx, r.gw, "tbl_clientes", customerColumns, fields, id)
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) (bool, error) {
	return remove(ctx, r.gw, `DELETE FROM tbl_clientes WHERE id = ?`, id)
}
