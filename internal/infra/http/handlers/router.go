package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/console-clientes/internal/infra/http/middleware"
)

func NewRouter(console *ConsoleHandler, health *HealthHandler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/", console.Render)
	r.Get("/estado", console.Estado)
	r.Post("/navegar", console.Navegar)

	r.Route("/clientes", func(r chi.Router) {
		r.Post("/cadastrar", console.Cadastrar)
		r.Post("/recarregar", console.Recarregar)
		r.Post("/{id}/atualizar", console.Atualizar)
		r.Post("/{id}/excluir", console.Excluir)
	})

	r.Get("/health", health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
