// Package validator checks a record draft against the field format contracts
// and reports every failure at once.
package validator

import (
	"regexp"
	"strings"

	"rpires/nf-control/internal/models"
	"rpires/nf-control/internal/normalizer"
)

var (
	codeRe      = regexp.MustCompile(`^\d\.\d{3}$`)
	accessKeyRe = regexp.MustCompile(`^\d{44}$`)
)

// Draft is the transient form state of a record before it is committed. The
// operation code is expected to be normalized already; the amount is still in
// its raw user-entered form.
type Draft struct {
	IssueDate      string
	DocumentNumber string
	Direction      string
	Counterparty   string
	Description    string
	OperationCode  string
	Category       string
	Amount         string
	Department     string
	Status         string
	AccessKey      string
}

// ValidateAccessKey reports whether key is exactly 44 ASCII digits.
func ValidateAccessKey(key string) bool {
	return accessKeyRe.MatchString(strings.TrimSpace(key))
}

// Validate checks every field rule independently and returns the aggregated
// list of error messages. An empty list means the draft may be committed; a
// non-empty list means the whole draft must be discarded.
func Validate(draft Draft) []string {
	var errs []string

	if _, err := normalizer.ParseIssueDate(draft.IssueDate); err != nil {
		errs = append(errs, "Data de emissão inválida (use dd/mm/aaaa).")
	}
	if strings.TrimSpace(draft.DocumentNumber) == "" {
		errs = append(errs, "Número da NF é obrigatório.")
	}
	if !codeRe.MatchString(draft.OperationCode) {
		errs = append(errs, "CFOP inválido (use 1.102 ou similar).")
	}
	if draft.Direction == "" {
		errs = append(errs, "Tipo não definido (selecione manualmente ou corrija o CFOP).")
	} else if !models.IsValidDirection(draft.Direction) {
		errs = append(errs, "Tipo inválido (use Entrada ou Saída).")
	}
	if !models.IsValidCategory(draft.Category) {
		errs = append(errs, "Categoria não selecionada.")
	}
	if _, err := normalizer.ParseAmount(draft.Amount); err != nil {
		errs = append(errs, "Valor total inválido.")
	}
	if strings.TrimSpace(draft.Department) == "" {
		errs = append(errs, "Departamento responsável não informado.")
	}
	if !models.IsValidStatus(draft.Status) {
		errs = append(errs, "Situação inválida (use Paga, Pendente, Recebida ou Entregue).")
	}
	if !ValidateAccessKey(draft.AccessKey) {
		errs = append(errs, "Chave de acesso deve conter 44 dígitos numéricos.")
	}

	return errs
}

// Record converts a validated draft into its canonical stored form. It must
// only be called after Validate returned no errors.
func Record(draft Draft) models.FiscalRecord {
	issued, _ := normalizer.ParseIssueDate(draft.IssueDate)
	amount, _ := normalizer.ParseAmount(draft.Amount)
	return models.FiscalRecord{
		IssueDate:      normalizer.FormatIssueDate(issued),
		DocumentNumber: strings.TrimSpace(draft.DocumentNumber),
		Direction:      draft.Direction,
		Counterparty:   strings.TrimSpace(draft.Counterparty),
		Description:    strings.TrimSpace(draft.Description),
		OperationCode:  draft.OperationCode,
		Category:       draft.Category,
		Amount:         normalizer.FormatAmount(amount),
		Department:     strings.TrimSpace(draft.Department),
		Status:         draft.Status,
		AccessKey:      strings.TrimSpace(draft.AccessKey),
	}
}
