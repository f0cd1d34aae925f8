package entity

type Order struct {
	ID         int    `json:"id"`
	ClienteID  int    `json:"cliente_id"`
	CarrinhoID int    `json:"carrinho_id"`
	DataHora   string `json:"data_hora"`
	Status     string `json:"status"` // free text, e.g. "aberto", "pago", "cancelado"
}

type OrderInput struct {
	ClienteID  *int    `json:"cliente_id" validate:"required"`
	CarrinhoID *int    `json:"carrinho_id" validate:"required"`
	DataHora   *string `json:"data_hora" validate:"required"`
	Status     *string `json:"status" validate:"required"`
}

func (in OrderInput) Order() Order {
	return Order{ClienteID: *in.ClienteID, CarrinhoID: *in.CarrinhoID, DataHora: *in.DataHora, Status: *in.Status}
}

// OrderPatch leaves the references out so an update cannot bypass the
// checks done at creation.
type OrderPatch struct {
	DataHora *string `json:"data_hora"`
	Status   *string `json:"status"`
}

func (p OrderPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "data_hora", p.DataHora)
	put(m, "status", p.Status)
	return m
}
