package usecase

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/console-clientes/internal/infra/integration/clienteapi"
	"github.com/xavierca1/console-clientes/internal/infra/queue"
)

// MockClienteGateway
type MockClienteGateway struct {
	mock.Mock
}

func (m *MockClienteGateway) ListarClientes(ctx context.Context) ([]clienteapi.ClienteAPI, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clienteapi.ClienteAPI), args.Error(1)
}

func (m *MockClienteGateway) ObterCliente(ctx context.Context, id int) (*clienteapi.ClienteAPI, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clienteapi.ClienteAPI), args.Error(1)
}

func (m *MockClienteGateway) CadastrarCliente(ctx context.Context, form clienteapi.ClienteForm) (*clienteapi.ClienteAPI, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clienteapi.ClienteAPI), args.Error(1)
}

func (m *MockClienteGateway) AtualizarCliente(ctx context.Context, id int, form clienteapi.ClienteForm) (*clienteapi.ClienteAPI, error) {
	args := m.Called(ctx, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clienteapi.ClienteAPI), args.Error(1)
}

func (m *MockClienteGateway) ExcluirCliente(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishClienteEvento(ctx context.Context, evento queue.ClienteEvento) error {
	args := m.Called(ctx, evento)
	return args.Error(0)
}

// alertaGravado guarda os alertas para inspeção.
type alertaGravado struct {
	mu        sync.Mutex
	mensagens []string
}

func (a *alertaGravado) Alertar(mensagem string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mensagens = append(a.mensagens, mensagem)
}

func (a *alertaGravado) todas() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.mensagens...)
}

type eventoFake struct {
	prevented int
}

func (e *eventoFake) PreventDefault() {
	e.prevented++
}
