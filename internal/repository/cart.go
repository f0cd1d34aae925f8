package repository

import (
	"context"
	"database/sql"

	"loja-service/internal/database"
	"loja-service/internal/entity"
)

var cartItemColumns = []string{"produto_id", "quantidade"}

type CartItemRepository struct {
	gw *database.Gateway
}

func NewCartItemRepository(gw *database.Gateway) *CartItemRepository {
	return &CartItemRepository{gw}
}

func (r *CartItemRepository) List(ctx context.Context) ([]entity.CartItem, error) {
	items := []entity.CartItem{}
	query := `SELECT id, produto_id, quantidade, cliente_id FROM tbl_carrinho`
	err := r.gw.Query(ctx, query, nil, func(rows *sql.Rows) error {
		var it entity.CartItem
		if err := rows.Scan(&it.ID, &it.ProdutoID, &it.Quantidade, &it.ClienteID); err != nil {
			return err
		}
		items = append(items, it)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListByCustomer joins the cart with its owner so that lines pointing at a
// removed customer are not reported.
func (r *CartItemRepository) ListByCustomer(ctx context.Context, customerID int) ([]entity.CustomerCartLine, error) {
	lines := []entity.CustomerCartLine{}
	query := `SELECT carrinho.id, carrinho.produto_id, carrinho.quantidade
		FROM tbl_carrinho carrinho
		JOIN tbl_clientes clientes ON carrinho.cliente_id = clientes.id
		WHERE clientes.id = ?`
	err := r.gw.Query(ctx, query, []any{customerID}, func(rows *sql.Rows) error {
		var l entity.CustomerCartLine
		if err := rows.Scan(&l.CarrinhoID, &l.ProdutoID, &l.Quantidade); err != nil {
			return err
		}
		lines = append(lines, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *CartItemRepository) Get(ctx context.Context, id int) (*entity.CartItem, error) {
	it := &entity.CartItem{}
	query := `SELECT id, produto_id, quantidade, cliente_id FROM tbl_carrinho WHERE id = ?`
	if err := r.gw.QueryRow(ctx, query, []any{id}, &it.ID, &it.ProdutoID, &it.Quantidade, &it.ClienteID); err != nil {
		return nil, err
	}
	return it, nil
}

func (r *CartItemRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.gw, `SELECT id FROM tbl_carrinho WHERE id = ?`, id)
}

func (r *CartItemRepository) Create(ctx context.Context, it entity.CartItem) (int, error) {
	query := `INSERT INTO tbl_carrinho (produto_id, quantidade, cliente_id) VALUES (?, ?, ?)`
	res, err := r.gw.Exec(ctx, query, it.ProdutoID, it.Quantidade, it.ClienteID)
	if err != nil {
		return 0, err
	}
	return int(res.LastInsertID), nil
}

func (r *CartItemRepository) Update(ctx context.Context, id int, fields map[string]any) (bool, error) {
	return update(ctx, r.gw, "tbl_carrinho", cartItemColumns, fields, id)
}

func (r *CartItemRepository) Delete(ctx context.Context, id int) (bool, error) {
	return remove(ctx, r.gw, `DELETE FROM tbl_carrinho WHERE id = ?`, id)
}
