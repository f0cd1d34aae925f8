package entity

type Supplier struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	CNPJ  string `json:"cnpj"`
}

type SupplierInput struct {
	Nome  *string `json:"nome" validate:"required"`
	Email *string `json:"email" validate:"required"`
	CNPJ  *string `json:"cnpj" validate:"required"`
}

func (in SupplierInput) Supplier() Supplier {
	return Supplier{Nome: *in.Nome, Email: *in.Email, CNPJ: *in.CNPJ}
}

func (in SupplierInput) Fields() map[string]any {
	m := map[string]any{}
	put(m, "nome", in.Nome)
	put(m, "email", in.Email)
	put(m, "cnpj", in.CNPJ)
	return m
}
