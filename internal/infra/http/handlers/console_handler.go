package handlers

import (
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/console-clientes/internal/entity"
	"github.com/xavierca1/console-clientes/internal/usecase"
)

const (
	Tema   = "purple lighten-4"
	Versao = "1.0.0"
)

//go:embed templates/*.html
var templatesFS embed.FS

var consoleTemplate = template.Must(
	template.New("console").
		Funcs(template.FuncMap{"icone": entity.Tela.Icone}).
		ParseFS(templatesFS, "templates/*.html"),
)

type ConsoleHandler struct {
	Roteador *usecase.Roteador
	Alertas  *FilaAlertas
}

func NewConsoleHandler(roteador *usecase.Roteador, alertas *FilaAlertas) *ConsoleHandler {
	return &ConsoleHandler{
		Roteador: roteador,
		Alertas:  alertas,
	}
}

type paginaConsole struct {
	Tela    entity.Tela
	Telas   []entity.Tela
	Estado  usecase.Estado
	Alertas []string
	Tema    string
	Versao  string
}

// eventoHTTP representa o clique no menu. Com a ação padrão impedida o
// handler responde com redirect para / em vez de renderizar em /navegar.
type eventoHTTP struct {
	prevented bool
}

func (e *eventoHTTP) PreventDefault() {
	e.prevented = true
}

// Render (GET /) desenha a tela ativa; uma tela desconhecida vira o Dashboard.
func (h *ConsoleHandler) Render(w http.ResponseWriter, r *http.Request) {
	estado := h.Roteador.Estado()
	pagina := paginaConsole{
		Tela:    estado.Tela.Resolver(),
		Telas:   entity.Telas,
		Estado:  estado,
		Alertas: h.Alertas.Consumir(),
		Tema:    Tema,
		Versao:  Versao,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := consoleTemplate.ExecuteTemplate(w, "console", pagina); err != nil {
		log.Printf("❌ [Console] Erro ao renderizar tela %q: %v", pagina.Tela, err)
		http.Error(w, "erro ao renderizar", http.StatusInternalServerError)
	}
}

// Navegar (POST /navegar)
func (h *ConsoleHandler) Navegar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}

	evento := &eventoHTTP{}
	h.Roteador.Navegar(r.PostForm.Get("tela"), evento)

	if evento.prevented {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.Render(w, r)
}

// Cadastrar (POST /clientes/cadastrar). O erro já foi alertado pelo roteador.
func (h *ConsoleHandler) Cadastrar(w http.ResponseWriter, r *http.Request) {
	novo, ok := lerNovoCliente(w, r)
	if !ok {
		return
	}

	h.Roteador.AdicionarCliente(r.Context(), novo)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Atualizar (POST /clientes/{id}/atualizar)
func (h *ConsoleHandler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, ok := lerID(w, r)
	if !ok {
		return
	}
	dados, ok := lerNovoCliente(w, r)
	if !ok {
		return
	}

	h.Roteador.AtualizarCliente(r.Context(), id, dados)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Excluir (POST /clientes/{id}/excluir)
func (h *ConsoleHandler) Excluir(w http.ResponseWriter, r *http.Request) {
	id, ok := lerID(w, r)
	if !ok {
		return
	}

	h.Roteador.ExcluirCliente(r.Context(), id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Recarregar (POST /clientes/recarregar)
func (h *ConsoleHandler) Recarregar(w http.ResponseWriter, r *http.Request) {
	h.Roteador.CarregarClientes(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Estado (GET /estado)
func (h *ConsoleHandler) Estado(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Roteador.Estado())
}

func lerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func lerNovoCliente(w http.ResponseWriter, r *http.Request) (entity.NovoCliente, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return entity.NovoCliente{}, false
	}

	return entity.NovoCliente{
		Nome:      strings.TrimSpace(r.PostForm.Get("nome")),
		Sobrenome: strings.TrimSpace(r.PostForm.Get("sobrenome")),
		Telefone:  strings.TrimSpace(r.PostForm.Get("telefone")),
		Email:     strings.TrimSpace(r.PostForm.Get("email")),
		Cidade:    strings.TrimSpace(r.PostForm.Get("cidade")),
		Ativo:     true,
	}, true
}
