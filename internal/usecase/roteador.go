package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/xavierca1/console-clientes/internal/entity"
	"github.com/xavierca1/console-clientes/internal/infra/http/middleware"
	"github.com/xavierca1/console-clientes/internal/infra/integration/clienteapi"
	"github.com/xavierca1/console-clientes/internal/infra/queue"
)

const (
	MsgErroCadastrar = "Erro ao cadastrar cliente. Tente novamente."
	MsgErroAtualizar = "Erro ao atualizar cliente. Tente novamente."
	MsgErroExcluir   = "Erro ao excluir cliente. Tente novamente."
)

// Roteador é o dono do estado do console: tela ativa e coleção de clientes.
//
// O mutex protege só a aplicação de cada comando. As chamadas ao gateway
// acontecem fora dele, então dois AdicionarCliente simultâneos correm em
// paralelo e herdam a corrida do CadastrarCliente (lista + pega o último).
type Roteador struct {
	Gateway ClienteGateway
	Alerta  Alerta
	Eventos EventPublisher

	mu     sync.Mutex
	estado Estado
	once   sync.Once
}

func NewRoteador(gateway ClienteGateway, alerta Alerta, eventos EventPublisher) *Roteador {
	if eventos == nil {
		eventos = queue.NoopProducer{}
	}
	return &Roteador{
		Gateway: gateway,
		Alerta:  alerta,
		Eventos: eventos,
		estado:  EstadoInicial(),
	}
}

// Estado devolve um retrato do estado atual. Os comandos nunca alteram um
// slice já publicado, então o retrato pode ser lido sem trava.
func (r *Roteador) Estado() Estado {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.estado
}

func (r *Roteador) aplicar(comando func(Estado) Estado) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.estado = comando(r.estado)
}

// Inicializar carrega os clientes na primeira ativação; chamadas seguintes não fazem nada.
func (r *Roteador) Inicializar(ctx context.Context) {
	r.once.Do(func() {
		r.CarregarClientes(ctx)
	})
}

// CarregarClientes substitui a coleção pelo que a API devolver. Em qualquer
// falha usa os dois clientes de fallback para a tela nunca ficar vazia.
func (r *Roteador) CarregarClientes(ctx context.Context) {
	r.aplicar(func(e Estado) Estado { return MarcarCarregando(e, true) })
	defer r.aplicar(func(e Estado) Estado { return MarcarCarregando(e, false) })

	clientesAPI, err := r.Gateway.ListarClientes(ctx)
	if err != nil {
		log.Printf("⚠️ [Roteador] Erro ao carregar clientes, usando dados de fallback: %v", err)
		middleware.RecordFallback()
		fallback := entity.ClientesFallback()
		r.aplicar(func(e Estado) Estado { return SubstituirClientes(e, fallback) })
		return
	}

	clientes := make([]entity.Cliente, 0, len(clientesAPI))
	for _, c := range clientesAPI {
		clientes = append(clientes, clienteapi.ParaClienteFront(c))
	}

	r.aplicar(func(e Estado) Estado { return SubstituirClientes(e, clientes) })
	log.Printf("✅ [Roteador] %d clientes carregados", len(clientes))
}

// Navegar impede a ação padrão do evento e troca a tela pelo valor recebido,
// mesmo que não seja uma tela conhecida.
func (r *Roteador) Navegar(tela string, evento Evento) {
	if evento != nil {
		evento.PreventDefault()
	}
	log.Printf("[Roteador] Navegando para %q", tela)
	r.aplicar(func(e Estado) Estado { return Navegar(e, entity.Tela(tela)) })
}

// AdicionarCliente cadastra na API, acrescenta o registro devolvido ao fim da
// coleção e abre a lista de clientes. Se algo falhar, alerta o usuário e não
// toca no estado.
func (r *Roteador) AdicionarCliente(ctx context.Context, novo entity.NovoCliente) (entity.Cliente, error) {
	if errs := ValidarNovoCliente(novo); len(errs) > 0 {
		msg := validationMessage(errs)
		r.alertar("Dados inválidos: " + msg)
		return entity.Cliente{}, &DomainError{Code: CodeValidation, Message: msg}
	}

	form := clienteapi.ParaClienteForm(novo)
	criado, err := r.Gateway.CadastrarCliente(ctx, form)
	if err != nil {
		log.Printf("❌ [Roteador] Erro ao cadastrar cliente: %v", err)
		r.alertar(MsgErroCadastrar)
		return entity.Cliente{}, &TechnicalError{Code: CodeGateway, Message: "erro ao cadastrar cliente", Err: err}
	}

	cliente := clienteapi.ParaClienteFront(*criado)
	r.aplicar(func(e Estado) Estado {
		return Navegar(AnexarCliente(e, cliente), entity.TelaClientes)
	})

	r.publicar(ctx, queue.EventoClienteCadastrado, cliente)
	return cliente, nil
}

// AtualizarCliente envia os dados editados e troca o registro no lugar.
// Falhas seguem a mesma política do cadastro: alerta e estado intacto.
func (r *Roteador) AtualizarCliente(ctx context.Context, id int, dados entity.NovoCliente) (entity.Cliente, error) {
	if errs := ValidarNovoCliente(dados); len(errs) > 0 {
		msg := validationMessage(errs)
		r.alertar("Dados inválidos: " + msg)
		return entity.Cliente{}, &DomainError{Code: CodeValidation, Message: msg}
	}

	form := clienteapi.ParaClienteForm(dados)
	atualizado, err := r.Gateway.AtualizarCliente(ctx, id, form)
	if err != nil {
		log.Printf("❌ [Roteador] Erro ao atualizar cliente %d: %v", id, err)
		r.alertar(MsgErroAtualizar)
		return entity.Cliente{}, &TechnicalError{Code: CodeGateway, Message: fmt.Sprintf("erro ao atualizar cliente %d", id), Err: err}
	}

	cliente := clienteapi.ParaClienteFront(*atualizado)
	r.aplicar(func(e Estado) Estado { return SubstituirCliente(e, cliente) })

	r.publicar(ctx, queue.EventoClienteAtualizado, cliente)
	return cliente, nil
}

// ExcluirCliente remove na API e, só depois do sucesso, da coleção.
func (r *Roteador) ExcluirCliente(ctx context.Context, id int) error {
	if err := r.Gateway.ExcluirCliente(ctx, id); err != nil {
		log.Printf("❌ [Roteador] Erro ao excluir cliente %d: %v", id, err)
		r.alertar(MsgErroExcluir)
		return &TechnicalError{Code: CodeGateway, Message: fmt.Sprintf("erro ao excluir cliente %d", id), Err: err}
	}

	removido, ok := r.Estado().Cliente(id)
	if !ok {
		removido = entity.Cliente{ID: id}
	}
	r.aplicar(func(e Estado) Estado { return RemoverCliente(e, id) })

	r.publicar(ctx, queue.EventoClienteExcluido, removido)
	return nil
}

func (r *Roteador) alertar(msg string) {
	if r.Alerta != nil {
		r.Alerta.Alertar(msg)
	}
}

func (r *Roteador) publicar(ctx context.Context, tipo string, c entity.Cliente) {
	if err := r.Eventos.PublishClienteEvento(ctx, queue.NovoClienteEvento(tipo, c)); err != nil {
		log.Printf("⚠️ [Roteador] Falha ao publicar evento %s do cliente #%d: %v", tipo, c.ID, err)
	}
}
