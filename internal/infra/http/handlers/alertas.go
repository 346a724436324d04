package handlers

import "sync"

// FilaAlertas guarda os alertas até a próxima página renderizada, onde
// viram um alert() bloqueante no navegador.
type FilaAlertas struct {
	mu        sync.Mutex
	mensagens []string
}

func NewFilaAlertas() *FilaAlertas {
	return &FilaAlertas{}
}

func (f *FilaAlertas) Alertar(mensagem string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mensagens = append(f.mensagens, mensagem)
}

// Consumir devolve os alertas pendentes e esvazia a fila.
func (f *FilaAlertas) Consumir() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	msgs := f.mensagens
	f.mensagens = nil
	return msgs
}
