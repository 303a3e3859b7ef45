// Package models provides the data structures used throughout the application.
package models

// Direction indicates whether a fiscal record represents goods or services
// received (inbound) or provided (outbound).
type Direction string

const (
	DirectionInbound  Direction = "Entrada"
	DirectionOutbound Direction = "Saída"
)

// FiscalRecord represents one row of the control worksheet. All fields hold
// canonical text values; a record is never mutated after it is appended.
type FiscalRecord struct {
	IssueDate      string `csv:"Data de Emissão"`
	DocumentNumber string `csv:"Nº da NF"`
	Direction      string `csv:"Tipo (Entrada/Saída)"`
	Counterparty   string `csv:"Fornecedor ou Cliente"`
	Description    string `csv:"Descrição / Observação"`
	OperationCode  string `csv:"CFOP"`
	Category       string `csv:"Categoria"`
	Amount         string `csv:"Valor Total (R$)"`
	Department     string `csv:"Departamento Responsável"`
	Status         string `csv:"Situação (Paga / Pendente / Recebida / Entregue)"`
	AccessKey      string `csv:"Chave de Acesso (44 dígitos)"`
}

// Columns is the fixed worksheet schema, in storage order. The store
// reconciles any loaded sheet against this exact order.
var Columns = []string{
	"Data de Emissão",
	"Nº da NF",
	"Tipo (Entrada/Saída)",
	"Fornecedor ou Cliente",
	"Descrição / Observação",
	"CFOP",
	"Categoria",
	"Valor Total (R$)",
	"Departamento Responsável",
	"Situação (Paga / Pendente / Recebida / Entregue)",
	"Chave de Acesso (44 dígitos)",
}

// Row returns the record's values in schema column order.
func (r FiscalRecord) Row() []string {
	return []string{
		r.IssueDate,
		r.DocumentNumber,
		r.Direction,
		r.Counterparty,
		r.Description,
		r.OperationCode,
		r.Category,
		r.Amount,
		r.Department,
		r.Status,
		r.AccessKey,
	}
}

// RecordFromRow builds a FiscalRecord from a row in schema column order.
// Short rows are padded with empty fields; extra cells are dropped.
func RecordFromRow(row []string) FiscalRecord {
	cells := make([]string, len(Columns))
	copy(cells, row)
	return FiscalRecord{
		IssueDate:      cells[0],
		DocumentNumber: cells[1],
		Direction:      cells[2],
		Counterparty:   cells[3],
		Description:    cells[4],
		OperationCode:  cells[5],
		Category:       cells[6],
		Amount:         cells[7],
		Department:     cells[8],
		Status:         cells[9],
		AccessKey:      cells[10],
	}
}
