package usecase

import "github.com/xavierca1/console-clientes/internal/entity"

// Estado é tudo o que as telas leem. Os comandos abaixo são funções puras:
// recebem o estado atual e devolvem o próximo, sem alterar o slice recebido.
type Estado struct {
	Tela       entity.Tela      `json:"tela"`
	Clientes   []entity.Cliente `json:"clientes"`
	Carregando bool             `json:"carregando"`
}

func EstadoInicial() Estado {
	return Estado{
		Tela:     entity.TelaDashboard,
		Clientes: []entity.Cliente{},
	}
}

// Navegar troca a tela sem validar o nome.
func Navegar(e Estado, tela entity.Tela) Estado {
	e.Tela = tela
	return e
}

func MarcarCarregando(e Estado, carregando bool) Estado {
	e.Carregando = carregando
	return e
}

func SubstituirClientes(e Estado, clientes []entity.Cliente) Estado {
	novos := make([]entity.Cliente, len(clientes))
	copy(novos, clientes)
	e.Clientes = novos
	return e
}

// AnexarCliente acrescenta no fim, sem deduplicar por ID.
func AnexarCliente(e Estado, c entity.Cliente) Estado {
	novos := make([]entity.Cliente, len(e.Clientes), len(e.Clientes)+1)
	copy(novos, e.Clientes)
	e.Clientes = append(novos, c)
	return e
}

// SubstituirCliente troca, na mesma posição, todo registro com o ID de c.
func SubstituirCliente(e Estado, c entity.Cliente) Estado {
	novos := make([]entity.Cliente, len(e.Clientes))
	for i, atual := range e.Clientes {
		if atual.ID == c.ID {
			novos[i] = c
			continue
		}
		novos[i] = atual
	}
	e.Clientes = novos
	return e
}

func RemoverCliente(e Estado, id int) Estado {
	novos := make([]entity.Cliente, 0, len(e.Clientes))
	for _, c := range e.Clientes {
		if c.ID != id {
			novos = append(novos, c)
		}
	}
	e.Clientes = novos
	return e
}

func (e Estado) Cliente(id int) (entity.Cliente, bool) {
	for _, c := range e.Clientes {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Cliente{}, false
}
