package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/console-clientes/internal/entity"
)

const (
	EventoClienteCadastrado = "cliente.cadastrado"
	EventoClienteAtualizado = "cliente.atualizado"
	EventoClienteExcluido   = "cliente.excluido"
)

// ClienteEvento é o registro de auditoria publicado após cada mutação bem-sucedida.
type ClienteEvento struct {
	ID         string    `json:"id"`
	Tipo       string    `json:"tipo"`
	ClienteID  int       `json:"cliente_id"`
	Nome       string    `json:"nome"`
	OcorridoEm time.Time `json:"ocorrido_em"`
}

func NovoClienteEvento(tipo string, c entity.Cliente) ClienteEvento {
	return ClienteEvento{
		ID:         uuid.New().String(),
		Tipo:       tipo,
		ClienteID:  c.ID,
		Nome:       c.NomeCompleto(),
		OcorridoEm: time.Now().UTC(),
	}
}

// Channel é o pedaço de *amqp.Channel que o producer usa.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Channel
}

func NewProducer(ch Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishClienteEvento(ctx context.Context, evento ClienteEvento) error {
	body, err := json.Marshal(evento)
	if err != nil {
		return fmt.Errorf("erro ao converter evento: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    evento.ID,
			Type:         evento.Tipo,
			Timestamp:    evento.OcorridoEm,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}

// NoopProducer descarta os eventos; usado quando AMQP_URL não está configurado.
type NoopProducer struct{}

func (NoopProducer) PublishClienteEvento(context.Context, ClienteEvento) error { return nil }
