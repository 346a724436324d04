package usecase

import (
	"context"

	"github.com/xavierca1/console-clientes/internal/infra/integration/clienteapi"
	"github.com/xavierca1/console-clientes/internal/infra/queue"
)

// ClienteGateway é o contrato da API remota de clientes.
type ClienteGateway interface {
	ListarClientes(ctx context.Context) ([]clienteapi.ClienteAPI, error)
	ObterCliente(ctx context.Context, id int) (*clienteapi.ClienteAPI, error)
	CadastrarCliente(ctx context.Context, form clienteapi.ClienteForm) (*clienteapi.ClienteAPI, error)
	AtualizarCliente(ctx context.Context, id int, form clienteapi.ClienteForm) (*clienteapi.ClienteAPI, error)
	ExcluirCliente(ctx context.Context, id int) error
}

// Alerta mostra uma mensagem bloqueante ao usuário.
type Alerta interface {
	Alertar(mensagem string)
}

type EventPublisher interface {
	PublishClienteEvento(ctx context.Context, evento queue.ClienteEvento) error
}

// Evento é a ação de interface que disparou a navegação.
type Evento interface {
	PreventDefault()
}
