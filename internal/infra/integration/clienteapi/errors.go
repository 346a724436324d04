package clienteapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrCadastroSemRetorno indica que o cadastro foi aceito mas a listagem
// seguinte veio vazia, então não há registro para devolver.
var ErrCadastroSemRetorno = errors.New("cadastro aceito mas nenhum cliente retornado pela listagem")

// TransportError: a requisição não chegou a ter resposta (rede, DNS, contexto cancelado).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: falha de transporte: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError: a API respondeu fora da faixa 2xx.
type HTTPStatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s: Erro HTTP: %d", e.Op, e.StatusCode)
}

// ParseError: a resposta 2xx não era um JSON válido para o tipo esperado.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: resposta inválida: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// StatusCode devolve o status HTTP carregado pelo erro, ou 0.
func StatusCode(err error) int {
	var target *HTTPStatusError
	if errors.As(err, &target) {
		return target.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
