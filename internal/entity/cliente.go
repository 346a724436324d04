package entity

import "strings"

// Cliente é o registro achatado consumido pelas telas do console.
type Cliente struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Telefone  string `json:"telefone"`
	Email     string `json:"email"`
	Cidade    string `json:"cidade"`
	Ativo     bool   `json:"ativo"`
}

// NovoCliente é o Cliente sem o ID (que só o servidor atribui).
type NovoCliente struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Telefone  string `json:"telefone"`
	Email     string `json:"email"`
	Cidade    string `json:"cidade"`
	Ativo     bool   `json:"ativo"`
}

func (c Cliente) NomeCompleto() string {
	return strings.TrimSpace(c.Nome + " " + c.Sobrenome)
}

// ClientesFallback devolve os registros fixos exibidos quando a carga inicial falha.
// Cada chamada devolve uma cópia nova.
func ClientesFallback() []Cliente {
	return []Cliente{
		{ID: 1, Nome: "João", Sobrenome: "Silva", Telefone: "(11) 99999-9999", Email: "joao@email.com", Cidade: "São Paulo", Ativo: true},
		{ID: 2, Nome: "Maria", Sobrenome: "Santos", Telefone: "(11) 88888-8888", Email: "maria@email.com", Cidade: "Rio de Janeiro", Ativo: true},
	}
}
