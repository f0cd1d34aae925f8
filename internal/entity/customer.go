package entity

// Customer is a row of tbl_clientes. Senha is stored and returned as plain
// text, exactly as the existing database holds it.
type Customer struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
	Senha string `json:"senha"`
}

// CustomerInput is the request body of POST and PUT /clientes.
type CustomerInput struct {
	Nome  *string `json:"nome" validate:"required"`
	Email *string `json:"email" validate:"required"`
	CPF   *string `json:"cpf" validate:"required"`
	Senha *string `json:"senha" validate:"required"`
}

// Customer must only be called after the input passed validation.
func (in CustomerInput) Customer() Customer {
	return Customer{Nome: *in.Nome, Email: *in.Email, CPF: *in.CPF, Senha: *in.Senha}
}

func (in CustomerInput) Fields() map[string]any {
	m := map[string]any{}
	put(m, "nome", in.Nome)
	put(m, "email", in.Email)
	put(m, "cpf", in.CPF)
	put(m, "senha", in.Senha)
	return m
}

/*
Mysql Table

CREATE TABLE tbl_clientes (
	id INT AUTO_INCREMENT PRIMARY KEY,
	nome VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	cpf VARCHAR(14) NOT NULL,
	senha VARCHAR(255) NOT NULL
);
*/
