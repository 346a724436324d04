package clienteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/xavierca1/console-clientes/internal/infra/http/middleware"
)

const (
	BaseURL     = "http://localhost:32832"
	serviceName = "cliente-api"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient cria o cliente da API. timeout zero significa sem timeout:
// uma requisição presa só termina quando o contexto for cancelado.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// ListarClientes: GET /clientes
func (c *Client) ListarClientes(ctx context.Context) ([]ClienteAPI, error) {
	var clientes []ClienteAPI
	if err := c.do(ctx, "listar clientes", http.MethodGet, "/clientes", nil, &clientes); err != nil {
		log.Printf("❌ [ClienteAPI] Erro ao listar clientes: %v", err)
		return nil, err
	}
	return clientes, nil
}

// ObterCliente: GET /cliente/{id}. 404 vira HTTPStatusError (IsNotFound).
func (c *Client) ObterCliente(ctx context.Context, id int) (*ClienteAPI, error) {
	var cliente ClienteAPI
	path := fmt.Sprintf("/cliente/%d", id)
	if err := c.do(ctx, "obter cliente", http.MethodGet, path, nil, &cliente); err != nil {
		log.Printf("❌ [ClienteAPI] Erro ao obter cliente %d: %v", id, err)
		return nil, err
	}
	return &cliente, nil
}

// CadastrarCliente: POST /cliente/cadastrar.
//
// A API responde só com o status, sem o registro criado. Por isso listamos
// tudo de novo e devolvemos o último elemento. Com dois cadastros simultâneos
// o "último" pode ser o do outro; é uma limitação do servidor.
func (c *Client) CadastrarCliente(ctx context.Context, form ClienteForm) (*ClienteAPI, error) {
	if err := c.do(ctx, "cadastrar cliente", http.MethodPost, "/cliente/cadastrar", form, nil); err != nil {
		log.Printf("❌ [ClienteAPI] Erro ao cadastrar cliente: %v", err)
		return nil, err
	}

	clientes, err := c.ListarClientes(ctx)
	if err != nil {
		log.Printf("❌ [ClienteAPI] Erro ao cadastrar cliente: %v", err)
		return nil, err
	}
	if len(clientes) == 0 {
		log.Printf("❌ [ClienteAPI] Erro ao cadastrar cliente: %v", ErrCadastroSemRetorno)
		return nil, ErrCadastroSemRetorno
	}

	ultimo := clientes[len(clientes)-1]
	log.Printf("✅ [ClienteAPI] Cliente cadastrado: #%d %s %s", ultimo.ID, ultimo.Nome, ultimo.SobreNome)
	return &ultimo, nil
}

// AtualizarCliente: PUT /cliente/atualizar com o ID no corpo, seguido de
// ObterCliente, já que a resposta também não traz o registro.
func (c *Client) AtualizarCliente(ctx context.Context, id int, form ClienteForm) (*ClienteAPI, error) {
	payload := atualizarClienteRequest{ClienteForm: form, ID: id}
	if err := c.do(ctx, "atualizar cliente", http.MethodPut, "/cliente/atualizar", payload, nil); err != nil {
		log.Printf("❌ [ClienteAPI] Erro ao atualizar cliente %d: %v", id, err)
		return nil, err
	}

	cliente, err := c.ObterCliente(ctx, id)
	if err != nil {
		log.Printf("❌ [ClienteAPI] Erro ao atualizar cliente %d: %v", id, err)
		return nil, err
	}
	return cliente, nil
}

// ExcluirCliente: DELETE /cliente/excluir com {"id": id} no corpo.
func (c *Client) ExcluirCliente(ctx context.Context, id int) error {
	payload := excluirClienteRequest{ID: id}
	if err := c.do(ctx, "excluir cliente", http.MethodDelete, "/cliente/excluir", payload, nil); err != nil {
		log.Printf("❌ [ClienteAPI] Erro ao excluir cliente %d: %v", id, err)
		return err
	}
	return nil
}

// Ping confere se a API responde 2xx na listagem, sem decodificar o corpo.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", http.MethodGet, "/clientes", nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: erro ao gerar json: %w", op, err)
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		middleware.RecordIntegrationError(serviceName)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		middleware.RecordIntegrationError(serviceName)
		return &HTTPStatusError{Op: op, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		middleware.RecordIntegrationError(serviceName)
		return &ParseError{Op: op, Err: err}
	}
	return nil
}
