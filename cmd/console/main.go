package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/console-clientes/internal/config"
	"github.com/xavierca1/console-clientes/internal/infra/http/handlers"
	"github.com/xavierca1/console-clientes/internal/infra/integration/clienteapi"
	"github.com/xavierca1/console-clientes/internal/infra/queue"
	"github.com/xavierca1/console-clientes/internal/infra/worker"
	"github.com/xavierca1/console-clientes/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Gateway da API de clientes
	gateway := clienteapi.NewClient(cfg.ClienteAPIURL, cfg.ClienteAPITimeout)

	// 2. Eventos de auditoria (opcional)
	var eventos usecase.EventPublisher = queue.NoopProducer{}
	var rabbitConn *amqp091.Connection
	if cfg.EventosHabilitados() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Printf("⚠️ RabbitMQ indisponível, eventos desabilitados: %v", err)
		} else {
			defer rabbitMQ.Close()
			rabbitConn = rabbitMQ.Conn
			eventos = queue.NewProducer(rabbitMQ.Ch)

			// O consumidor usa um canal próprio.
			workerCh, err := rabbitMQ.Conn.Channel()
			if err != nil {
				log.Printf("⚠️ Falha ao abrir canal do worker: %v", err)
			} else {
				defer workerCh.Close()
				consumidor := queue.NewWorker(workerCh)
				go func() {
					if err := consumidor.Start(ctx, queue.QueueName); err != nil {
						log.Printf("❌ [WORKER] %v", err)
					}
				}()
			}
		}
	}

	// 3. Estado do console
	alertas := handlers.NewFilaAlertas()
	roteador := usecase.NewRoteador(gateway, alertas, eventos)
	go roteador.Inicializar(ctx)

	// Recarga periódica (CLIENTE_RECARGA_INTERVALO=0 desabilita)
	recarga := worker.NewRecargaWorker(roteador, cfg.RecargaIntervalo)
	go recarga.Start(ctx)

	// 4. Handlers e Router
	consoleHandler := handlers.NewConsoleHandler(roteador, alertas)
	healthHandler := handlers.NewHealthHandler(gateway, rabbitConn)
	router := handlers.NewRouter(consoleHandler, healthHandler, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("🔥 Console de clientes rodando na porta %s (API: %s)", cfg.Port, cfg.ClienteAPIURL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
