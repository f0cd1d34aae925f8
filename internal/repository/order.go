package repository

import (
	"context"
	"database/sql"

	"loja-service/internal/database"
	"loja-service/internal/entity"
)

var orderColumns = []string{"data_hora", "status"}

type OrderRepository struct {
	gw *database.Gateway
}

func NewOrderRepository(gw *database.Gateway) *OrderRepository {
	return &OrderRepository{gw}
}

func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	orders := []entity.Order{}
	query := `SELECT id, cliente_id, carrinho_id, data_hora, status FROM tbl_pedido`
	err := r.gw.Query(ctx, query, nil, func(rows *sql.Rows) error {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ClienteID, &o.CarrinhoID, &o.DataHora, &o.Status); err != nil {
			return err
		}
		orders = append(orders, o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) Get(ctx context.Context, id int) (*entity.Order, error) {
	o := &entity.Order{}
	query := `SELECT id, cliente_id, carrinho_id, data_hora, status FROM tbl_pedido WHERE id = ?`
	if err := r.gw.QueryRow(ctx, query, []any{id}, &o.ID, &o.ClienteID, &o.CarrinhoID, &o.DataHora, &o.Status); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o entity.Order) (int, error) {
	query := `INSERT INTO tbl_pedido (cliente_id, carrinho_id, data_hora, status) VALUES (?, ?, ?, ?)`
	res, err := r.gw.Exec(ctx, query, o.ClienteID, o.CarrinhoID, o.DataHora, o.Status)
	if err != nil {
		return 0, err
	}
	return int(res.LastInsertID), nil
}

func (r *OrderRepository) Update(ctx context.Context, id int, fields map[string]any) (bool, error) {
	return update(ctx, r.gw, "tbl_pedido", orderColumns, fields, id)
}

func (r *OrderRepository) Delete(ctx context.Context, id int) (bool, error) {
	return remove(ctx, r.gw, `DELETE FROM tbl_pedido WHERE id = ?`, id)
}
