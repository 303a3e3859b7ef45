package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		IssueDate:      "10/10/2025",
		DocumentNumber: "1023",
		Direction:      "Entrada",
		Counterparty:   "Ferro & Cia Ltda",
		Description:    "Compra de barras de ferro",
		OperationCode:  "1.102",
		Category:       "Materiais / Insumos",
		Amount:         "8.500,00",
		Department:     "Almoxarifado / Contabilidade",
		Status:         "Recebida",
		AccessKey:      strings.Repeat("3524111187978", 3) + "00012",
	}
}

func TestValidateCleanDraft(t *testing.T) {
	draft := validDraft()
	require.Len(t, draft.AccessKey, 44)
	assert.Empty(t, Validate(draft))
}

func TestValidateSingleFieldFailures(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Draft)
		message string
	}{
		{"BadDate", func(d *Draft) { d.IssueDate = "2025-13-40" }, "Data de emissão inválida (use dd/mm/aaaa)."},
		{"EmptyNumber", func(d *Draft) { d.DocumentNumber = "   " }, "Número da NF é obrigatório."},
		{"BadCode", func(d *Draft) { d.OperationCode = "11.02" }, "CFOP inválido (use 1.102 ou similar)."},
		{"NoDirection", func(d *Draft) { d.Direction = "" }, "Tipo não definido (selecione manualmente ou corrija o CFOP)."},
		{"BadCategory", func(d *Draft) { d.Category = "Outra" }, "Categoria não selecionada."},
		{"UnknownDirection", func(d *Draft) { d.Direction = "Qualquer" }, "Tipo inválido (use Entrada ou Saída)."},
		{"UnknownStatus", func(d *Draft) { d.Status = "Cancelada" }, "Situação inválida (use Paga, Pendente, Recebida ou Entregue)."},
		{"BadAmount", func(d *Draft) { d.Amount = "abc" }, "Valor total inválido."},
		{"EmptyDepartment", func(d *Draft) { d.Department = " " }, "Departamento responsável não informado."},
		{"ShortAccessKey", func(d *Draft) { d.AccessKey = d.AccessKey[:43] }, "Chave de acesso deve conter 44 dígitos numéricos."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)
			errs := Validate(draft)
			// Exactly one rule fails, and it reports the expected message.
			require.Len(t, errs, 1)
			assert.Equal(t, tc.message, errs[0])
		})
	}
}

func TestValidateAggregatesAllFailures(t *testing.T) {
	draft := validDraft()
	draft.IssueDate = "bogus"
	draft.DocumentNumber = ""
	draft.AccessKey = "123"
	errs := Validate(draft)
	assert.Len(t, errs, 3, "independent rules must all be reported in one pass")
}

func TestValidateRejectsValuesOutsideClosedSets(t *testing.T) {
	// Direction and status are closed sets; free-text values must not reach
	// the worksheet.
	draft := validDraft()
	draft.Direction = "Qualquer"
	draft.Status = "Cancelada"

	errs := Validate(draft)
	require.Len(t, errs, 2)
	assert.Contains(t, errs, "Tipo inválido (use Entrada ou Saída).")
	assert.Contains(t, errs, "Situação inválida (use Paga, Pendente, Recebida ou Entregue).")
}

func TestValidateAccessKey(t *testing.T) {
	key43 := "3524111187978800012355000000102312345678901"
	require.Len(t, key43, 43)

	assert.False(t, ValidateAccessKey(key43), "43 digits must be rejected")
	assert.True(t, ValidateAccessKey(key43+"2"), "44 digits must be accepted")
	assert.False(t, ValidateAccessKey(key43+"22"), "45 digits must be rejected")
	assert.False(t, ValidateAccessKey(key43+"x"), "non-digit must be rejected")
	assert.False(t, ValidateAccessKey("3524 "+key43[5:]+"2"), "embedded separator must be rejected")
	assert.True(t, ValidateAccessKey("  "+key43+"2  "), "surrounding whitespace is trimmed")
	assert.False(t, ValidateAccessKey(""))
}

func TestRecordCanonicalForm(t *testing.T) {
	draft := validDraft()
	draft.IssueDate = "5/3/2025"
	draft.DocumentNumber = " 1023 "
	draft.Amount = "8.500,00"

	record := Record(draft)
	assert.Equal(t, "05/03/2025", record.IssueDate)
	assert.Equal(t, "1023", record.DocumentNumber)
	assert.Equal(t, "8500.00", record.Amount)
	assert.Equal(t, "1.102", record.OperationCode)
}
