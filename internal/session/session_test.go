package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"rpires/nf-control/internal/config"
	"rpires/nf-control/internal/inference"
	"rpires/nf-control/internal/models"
	"rpires/nf-control/internal/normalizer"
	"rpires/nf-control/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Worksheet.Path = filepath.Join(t.TempDir(), "notas.xlsx")
	cfg.Worksheet.Sheet = "Notas"
	cfg.Advisor.Endpoint = "http://localhost:11434"
	cfg.Advisor.Model = "llama3.2"
	cfg.Advisor.TimeoutSeconds = 1
	return cfg
}

func TestNewStartsEmptyForFreshWorksheet(t *testing.T) {
	sess := New(testConfig(t))
	assert.Equal(t, 0, sess.Table.Len())
	assert.NotNil(t, sess.Mappings)
}

func TestGuidedEntryFlow(t *testing.T) {
	cfg := testConfig(t)
	sess := New(cfg)

	// Raw form input: undotted CFOP, locale amount, no explicit type.
	codeNorm := normalizer.NormalizeOperationCode("1102")
	require.Equal(t, "1.102", codeNorm)

	inferred := inference.InferDirection(codeNorm)
	require.True(t, inferred.Determined)
	require.Equal(t, models.DirectionInbound, inferred.Direction)

	direction, warning, err := inference.ResolveDirection("", inferred)
	require.NoError(t, err)
	require.Empty(t, warning)

	draft := validator.Draft{
		IssueDate:      "10/10/2025",
		DocumentNumber: "1023",
		Direction:      string(direction),
		Counterparty:   "Ferro & Cia Ltda",
		Description:    "Compra de barras de ferro",
		OperationCode:  codeNorm,
		Category:       "Materiais / Insumos",
		Amount:         "8.500,00",
		Department:     sess.Mappings.SuggestDepartmentByCode(codeNorm),
		Status:         "Recebida",
		AccessKey:      "35241111879788000123550000001023123456789012",
	}
	require.Empty(t, validator.Validate(draft))

	record := validator.Record(draft)
	assert.Equal(t, "Entrada", record.Direction)
	assert.Equal(t, "8500.00", record.Amount)

	require.NoError(t, sess.Commit(record))
	assert.Equal(t, 1, sess.Table.Len())

	// A fresh session sees the persisted record.
	reloaded := New(cfg)
	require.Equal(t, 1, reloaded.Table.Len())
	assert.Equal(t, record, reloaded.Table.Records[0])
}

func TestCommitKeepsPriorRows(t *testing.T) {
	cfg := testConfig(t)
	sess := New(cfg)

	first := models.FiscalRecord{DocumentNumber: "1", IssueDate: "10/10/2025"}
	second := models.FiscalRecord{DocumentNumber: "2", IssueDate: "11/10/2025"}
	require.NoError(t, sess.Commit(first))
	require.NoError(t, sess.Commit(second))

	require.Equal(t, 2, sess.Table.Len())
	assert.Equal(t, "1", sess.Table.Records[0].DocumentNumber)
	assert.Equal(t, "2", sess.Table.Records[1].DocumentNumber)
}

func TestAdvisorFromConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Ollama is running"))
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.Advisor.Endpoint = server.URL

	client := New(cfg).Advisor()
	require.NotNil(t, client)
	assert.True(t, client.Available(context.Background()), "the session-built client must target the configured endpoint")
}
