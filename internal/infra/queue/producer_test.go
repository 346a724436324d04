package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/console-clientes/internal/entity"
)

// MockChannel
type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

// TestNovoClienteEvento - cada evento ganha um UUID próprio
func TestNovoClienteEvento(t *testing.T) {
	c := entity.Cliente{ID: 3, Nome: "Carlos", Sobrenome: "Lima"}

	e1 := NovoClienteEvento(EventoClienteCadastrado, c)
	e2 := NovoClienteEvento(EventoClienteCadastrado, c)

	_, err := uuid.Parse(e1.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, e1.ID, e2.ID)
	assert.Equal(t, EventoClienteCadastrado, e1.Tipo)
	assert.Equal(t, 3, e1.ClienteID)
	assert.Equal(t, "Carlos Lima", e1.Nome)
	assert.False(t, e1.OcorridoEm.IsZero())
}

// TestPublishClienteEvento - publica persistente no exchange de clientes
func TestPublishClienteEvento(t *testing.T) {
	ch := new(MockChannel)
	evento := NovoClienteEvento(EventoClienteExcluido, entity.Cliente{ID: 9, Nome: "Rui", Sobrenome: "Dias"})

	ch.On("PublishWithContext", mock.Anything, ExchangeName, RoutingKey, false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			var recebido ClienteEvento
			if err := json.Unmarshal(msg.Body, &recebido); err != nil {
				return false
			}
			return msg.ContentType == "application/json" &&
				msg.DeliveryMode == amqp.Persistent &&
				msg.MessageId == evento.ID &&
				msg.Type == EventoClienteExcluido &&
				recebido.ClienteID == 9
		})).Return(nil)

	err := NewProducer(ch).PublishClienteEvento(context.Background(), evento)

	require.NoError(t, err)
	ch.AssertExpectations(t)
}

// TestPublishClienteEvento_Erro
func TestPublishClienteEvento_Erro(t *testing.T) {
	ch := new(MockChannel)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(amqp.ErrClosed)

	err := NewProducer(ch).PublishClienteEvento(context.Background(), ClienteEvento{ID: "x", Tipo: EventoClienteCadastrado})

	require.Error(t, err)
	assert.True(t, errors.Is(err, amqp.ErrClosed))
	assert.Contains(t, err.Error(), "falha ao publicar no RabbitMQ")
}

func TestNoopProducer(t *testing.T) {
	assert.NoError(t, NoopProducer{}.PublishClienteEvento(context.Background(), ClienteEvento{}))
}
