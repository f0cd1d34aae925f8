package entity

type Product struct {
	ID                int     `json:"id"`
	Nome              string  `json:"nome"`
	Descricao         string  `json:"descricao"`
	Preco             float64 `json:"preco"`
	QtdEmEstoque      int     `json:"qtd_em_estoque"`
	FornecedorID      int     `json:"fornecedor_id"`
	CustoNoFornecedor float64 `json:"custo_no_fornecedor"`
}

type ProductInput struct {
	Nome              *string  `json:"nome" validate:"required"`
	Descricao         *string  `json:"descricao" validate:"required"`
	Preco             *float64 `json:"preco" validate:"required"`
	QtdEmEstoque      *int     `json:"qtd_em_estoque" validate:"required"`
	FornecedorID      *int     `json:"fornecedor_id" validate:"required"`
	CustoNoFornecedor *float64 `json:"custo_no_fornecedor" validate:"required"`
}

func (in ProductInput) Product() Product {
	return Product{
		Nome:              *in.Nome,
		Descricao:         *in.Descricao,
		Preco:             *in.Preco,
		QtdEmEstoque:      *in.QtdEmEstoque,
		FornecedorID:      *in.FornecedorID,
		CustoNoFornecedor: *in.CustoNoFornecedor,
	}
}

func (in ProductInput) Fields() map[string]any {
	m := map[string]any{}
	put(m, "nome", in.Nome)
	put(m, "descricao", in.Descricao)
	put(m, "preco", in.Preco)
	put(m, "qtd_em_estoque", in.QtdEmEstoque)
	put(m, "fornecedor_id", in.FornecedorID)
	put(m, "custo_no_fornecedor", in.CustoNoFornecedor)
	return m
}
