package worker

import (
	"context"
	"log"
	"time"
)

type Recarregador interface {
	CarregarClientes(ctx context.Context)
}

// RecargaWorker busca a lista de clientes de novo a cada intervalo, para o
// console acompanhar cadastros feitos por outras sessões.
type RecargaWorker struct {
	roteador     Recarregador
	tickInterval time.Duration
}

func NewRecargaWorker(roteador Recarregador, intervalo time.Duration) *RecargaWorker {
	return &RecargaWorker{
		roteador:     roteador,
		tickInterval: intervalo,
	}
}

// Start bloqueia até o contexto ser cancelado. A primeira carga fica com o
// Inicializar do roteador, então o worker só age a partir do primeiro tick.
func (w *RecargaWorker) Start(ctx context.Context) {
	if w.tickInterval <= 0 {
		log.Println("⚠️ Recarga Worker desabilitado (intervalo zero)")
		return
	}
	log.Printf("🕒 Recarga Worker iniciado (a cada %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Recarga Worker encerrado")
			return
		case <-ticker.C:
			w.roteador.CarregarClientes(ctx)
		}
	}
}
