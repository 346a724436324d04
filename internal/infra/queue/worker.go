package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/console-clientes/internal/infra/http/middleware"
)

// Worker consome a fila de auditoria, registra cada evento no log e nas métricas.
type Worker struct {
	Channel *amqp.Channel
}

func NewWorker(ch *amqp.Channel) *Worker {
	return &Worker{Channel: ch}
}

// Start bloqueia até o contexto ser cancelado ou o canal de entregas fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.ConsumeWithContext(ctx,
		queueName, // fila
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	log.Printf(" [*] Worker de auditoria aguardando na fila '%s'", queueName)

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				log.Printf("⚠️ [WORKER] Canal de entregas fechado")
				return nil
			}
			if err := w.processMessage(d.Body); err != nil {
				log.Printf("❌ [WORKER] %s", err)
				// Mensagem malformada: rejeita sem requeue, vai para a DLQ.
				d.Nack(false, false)
				continue
			}
			d.Ack(false)
		}
	}
}

func (w *Worker) processMessage(body []byte) error {
	var evento ClienteEvento
	if err := json.Unmarshal(body, &evento); err != nil {
		return fmt.Errorf("JSON inválido: %w", err)
	}

	switch evento.Tipo {
	case EventoClienteCadastrado, EventoClienteAtualizado, EventoClienteExcluido:
	default:
		return fmt.Errorf("tipo de evento desconhecido: %q", evento.Tipo)
	}

	log.Printf("📥 [WORKER] %s cliente #%d (%s) em %s", evento.Tipo, evento.ClienteID, evento.Nome, evento.OcorridoEm.Format("2006-01-02 15:04:05"))
	middleware.RecordClienteEvento(evento.Tipo)
	return nil
}
