package entity

// Tela identifica a visão ativa do console. O valor é livre: Navegar aceita
// qualquer string, e só na renderização uma tela desconhecida cai no Dashboard.
type Tela string

const (
	TelaDashboard        Tela = "Dashboard"
	TelaClientes         Tela = "Clientes"
	TelaCadastrarCliente Tela = "Cadastrar Cliente"
	TelaRelatorios       Tela = "Relatórios"
	TelaConfiguracoes    Tela = "Configurações"
)

// Telas lista os botões da barra de navegação, na ordem exibida.
var Telas = []Tela{
	TelaDashboard,
	TelaClientes,
	TelaCadastrarCliente,
	TelaRelatorios,
	TelaConfiguracoes,
}

func (t Tela) Conhecida() bool {
	switch t {
	case TelaDashboard, TelaClientes, TelaCadastrarCliente, TelaRelatorios, TelaConfiguracoes:
		return true
	}
	return false
}

// Resolver devolve a tela que de fato será renderizada.
func (t Tela) Resolver() Tela {
	if !t.Conhecida() {
		return TelaDashboard
	}
	return t
}

// Icone devolve o nome do material icon usado no menu.
func (t Tela) Icone() string {
	switch t {
	case TelaDashboard:
		return "dashboard"
	case TelaClientes:
		return "people"
	case TelaCadastrarCliente:
		return "person_add"
	case TelaRelatorios:
		return "assessment"
	case TelaConfiguracoes:
		return "settings"
	default:
		return "navigate_next"
	}
}
