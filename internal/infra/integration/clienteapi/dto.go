package clienteapi

// ClienteAPI é o formato aninhado devolvido pela API de clientes.
type ClienteAPI struct {
	ID        int           `json:"id"`
	Nome      string        `json:"nome"`
	SobreNome string        `json:"sobreNome"`
	Email     *string       `json:"email,omitempty"`
	Endereco  EnderecoAPI   `json:"endereco"`
	Telefones []TelefoneAPI `json:"telefones"`
}

type EnderecoAPI struct {
	ID                    int    `json:"id"`
	Estado                string `json:"estado"`
	Cidade                string `json:"cidade"`
	Bairro                string `json:"bairro"`
	Rua                   string `json:"rua"`
	Numero                string `json:"numero"`
	CodigoPostal          string `json:"codigoPostal"`
	InformacoesAdicionais string `json:"informacoesAdicionais"`
}

type TelefoneAPI struct {
	ID     int    `json:"id"`
	DDD    string `json:"ddd"`
	Numero string `json:"numero"`
}

// ClienteForm é o corpo de cadastro/atualização (sem os IDs do servidor).
type ClienteForm struct {
	Nome      string         `json:"nome"`
	SobreNome string         `json:"sobreNome"`
	Email     *string        `json:"email"` // null quando vazio
	Endereco  EnderecoForm   `json:"endereco"`
	Telefones []TelefoneForm `json:"telefones"`
}

type EnderecoForm struct {
	Estado                string `json:"estado"`
	Cidade                string `json:"cidade"`
	Bairro                string `json:"bairro"`
	Rua                   string `json:"rua"`
	Numero                string `json:"numero"`
	CodigoPostal          string `json:"codigoPostal"`
	InformacoesAdicionais string `json:"informacoesAdicionais"`
}

type TelefoneForm struct {
	DDD    string `json:"ddd"`
	Numero string `json:"numero"`
}

// A API de atualização exige o ID no corpo.
type atualizarClienteRequest struct {
	ClienteForm
	ID int `json:"id"`
}

type excluirClienteRequest struct {
	ID int `json:"id"`
}
