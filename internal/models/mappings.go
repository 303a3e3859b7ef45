package models

// Categories is the closed set of record categories.
var Categories = []string{
	"Materiais / Insumos",
	"Serviços",
	"Vendas de Produtos",
	"Despesas administrativas",
}

// Statuses is the closed set of record statuses.
var Statuses = []string{
	"Paga",
	"Pendente",
	"Recebida",
	"Entregue",
}

// CodePrefixSectorMap maps the leading digit of an operation code to the
// department conventionally responsible for that kind of operation.
var CodePrefixSectorMap = map[string]string{
	"1": "Compras / Almoxarifado / Contabilidade",
	"2": "Compras / Almoxarifado / Contabilidade",
	"5": "Vendas / Financeiro / Fiscal",
	"6": "Vendas / Financeiro / Fiscal",
}

// CategorySectorMap maps a category to its suggested responsible department.
var CategorySectorMap = map[string]string{
	"Materiais / Insumos":      "Produção / Almoxarifado",
	"Serviços":                 "Manutenção / Financeiro",
	"Vendas de Produtos":       "Comercial / Fiscal",
	"Despesas administrativas": "Administrativo / Financeiro",
}

// IsValidCategory reports whether cat is a member of the fixed category set.
func IsValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// IsValidDirection reports whether dir is Entrada or Saída.
func IsValidDirection(dir string) bool {
	return dir == string(DirectionInbound) || dir == string(DirectionOutbound)
}

// IsValidStatus reports whether status is a member of the fixed status set.
func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
