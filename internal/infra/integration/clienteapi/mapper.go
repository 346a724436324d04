package clienteapi

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xavierca1/console-clientes/internal/entity"
)

// Valores fixos do endereço: o formulário só coleta a cidade.
const (
	EstadoPadrao       = "São Paulo"
	CidadePadrao       = "São Paulo"
	BairroPadrao       = "Centro"
	RuaPadrao          = "Rua Principal"
	NumeroPadrao       = "123"
	CodigoPostalPadrao = "01000-000"
	DDDPadrao          = "11"
)

var (
	telefoneRegex = regexp.MustCompile(`\((\d{2})\)\s*(\d{4,5}-?\d{4})`)
	naoDigito     = regexp.MustCompile(`\D`)
)

type OrigemTelefone int

const (
	// TelefoneReconhecido: o texto bateu com "(DD) NNNNN-NNNN" ou "(DD) NNNN-NNNN".
	TelefoneReconhecido OrigemTelefone = iota
	// TelefonePadrao: não bateu; DDD padrão e só os dígitos do texto.
	TelefonePadrao
)

func (o OrigemTelefone) String() string {
	if o == TelefoneReconhecido {
		return "reconhecido"
	}
	return "padrao"
}

type TelefoneNormalizado struct {
	DDD    string
	Numero string
	Origem OrigemTelefone
}

func (t TelefoneNormalizado) Reconhecido() bool {
	return t.Origem == TelefoneReconhecido
}

// NormalizarTelefone extrai DDD e número de um telefone digitado livremente.
func NormalizarTelefone(telefone string) TelefoneNormalizado {
	if m := telefoneRegex.FindStringSubmatch(telefone); m != nil {
		return TelefoneNormalizado{
			DDD:    m[1],
			Numero: strings.Replace(m[2], "-", "", 1),
			Origem: TelefoneReconhecido,
		}
	}
	return TelefoneNormalizado{
		DDD:    DDDPadrao,
		Numero: naoDigito.ReplaceAllString(telefone, ""),
		Origem: TelefonePadrao,
	}
}

// ParaClienteFront converte o registro da API para o formato das telas.
// Só o primeiro telefone sobrevive; ativo é sempre true (a API não tem o campo).
func ParaClienteFront(c ClienteAPI) entity.Cliente {
	telefone := ""
	if len(c.Telefones) > 0 {
		telefone = fmt.Sprintf("(%s) %s", c.Telefones[0].DDD, c.Telefones[0].Numero)
	}

	email := ""
	if c.Email != nil {
		email = *c.Email
	}

	return entity.Cliente{
		ID:        c.ID,
		Nome:      c.Nome,
		Sobrenome: c.SobreNome,
		Telefone:  telefone,
		Email:     email,
		Cidade:    c.Endereco.Cidade,
		Ativo:     true,
	}
}

// ParaClienteForm monta o corpo de cadastro a partir do formulário.
// A conversão perde dados: ParaClienteForm(ParaClienteFront(x)) não reproduz x.
func ParaClienteForm(c entity.NovoCliente) ClienteForm {
	tel := NormalizarTelefone(c.Telefone)

	var email *string
	if c.Email != "" {
		e := c.Email
		email = &e
	}

	cidade := c.Cidade
	if cidade == "" {
		cidade = CidadePadrao
	}

	return ClienteForm{
		Nome:      c.Nome,
		SobreNome: c.Sobrenome,
		Email:     email,
		Endereco: EnderecoForm{
			Estado:       EstadoPadrao,
			Cidade:       cidade,
			Bairro:       BairroPadrao,
			Rua:          RuaPadrao,
			Numero:       NumeroPadrao,
			CodigoPostal: CodigoPostalPadrao,
		},
		Telefones: []TelefoneForm{{DDD: tel.DDD, Numero: tel.Numero}},
	}
}
