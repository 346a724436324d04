package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTela_Resolver(t *testing.T) {
	for _, tela := range Telas {
		assert.True(t, tela.Conhecida(), tela)
		assert.Equal(t, tela, tela.Resolver())
	}

	assert.False(t, Tela("Financeiro").Conhecida())
	assert.Equal(t, TelaDashboard, Tela("Financeiro").Resolver())
	assert.Equal(t, TelaDashboard, Tela("").Resolver())
	// sem normalização de caixa
	assert.Equal(t, TelaDashboard, Tela("clientes").Resolver())
}

func TestTela_Icone(t *testing.T) {
	assert.Equal(t, "dashboard", TelaDashboard.Icone())
	assert.Equal(t, "people", TelaClientes.Icone())
	assert.Equal(t, "person_add", TelaCadastrarCliente.Icone())
	assert.Equal(t, "assessment", TelaRelatorios.Icone())
	assert.Equal(t, "settings", TelaConfiguracoes.Icone())
	assert.Equal(t, "navigate_next", Tela("Outro").Icone())
}

func TestClientesFallback(t *testing.T) {
	a := ClientesFallback()
	if assert.Len(t, a, 2) {
		assert.Equal(t, 1, a[0].ID)
		assert.Equal(t, "João", a[0].Nome)
		assert.Equal(t, 2, a[1].ID)
		assert.Equal(t, "Rio de Janeiro", a[1].Cidade)
	}

	// cópias independentes
	a[0].Nome = "Alterado"
	assert.Equal(t, "João", ClientesFallback()[0].Nome)
}

func TestCliente_NomeCompleto(t *testing.T) {
	assert.Equal(t, "Ana Souza", Cliente{Nome: "Ana", Sobrenome: "Souza"}.NomeCompleto())
	assert.Equal(t, "Ana", Cliente{Nome: "Ana"}.NomeCompleto())
}
