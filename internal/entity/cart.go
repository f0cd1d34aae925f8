package entity

// CartItem is one product line in a customer's cart (tbl_carrinho).
type CartItem struct {
	ID         int `json:"id"`
	ProdutoID  int `json:"produto_id"`
	Quantidade int `json:"quantidade"`
	ClienteID  int `json:"cliente_id"`
}

// CustomerCartLine is a row of the per-customer cart listing.
type CustomerCartLine struct {
	CarrinhoID int `json:"carrinho_id"`
	ProdutoID  int `json:"produto_id"`
	Quantidade int `json:"quantidade"`
}

type CartItemInput struct {
	ProdutoID  *int `json:"produto_id" validate:"required"`
	Quantidade *int `json:"quantidade" validate:"required,gt=0"`
	ClienteID  *int `json:"cliente_id" validate:"required"`
}

func (in CartItemInput) CartItem() CartItem {
	return CartItem{ProdutoID: *in.ProdutoID, Quantidade: *in.Quantidade, ClienteID: *in.ClienteID}
}

// CartItemPatch omits cliente_id: a cart line never changes owner.
type CartItemPatch struct {
	ProdutoID  *int `json:"produto_id"`
	Quantidade *int `json:"quantidade" validate:"omitempty,gt=0"`
}

func (p CartItemPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "produto_id", p.ProdutoID)
	put(m, "quantidade", p.Quantidade)
	return m
}
