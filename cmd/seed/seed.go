// Package seed implements the canned example loading command.
package seed

import (
	"fmt"

	"rpires/nf-control/cmd/root"
	"rpires/nf-control/internal/models"
	"rpires/nf-control/internal/session"

	"github.com/spf13/cobra"
)

// Example records from the original control worksheet exercise.
var examples = []models.FiscalRecord{
	{
		IssueDate:      "10/10/2025",
		DocumentNumber: "1023",
		Direction:      "Entrada",
		Counterparty:   "Ferro & Cia Ltda",
		Description:    "Compra de barras de ferro",
		OperationCode:  "1.102",
		Category:       "Materiais / Insumos",
		Amount:         "8500.00",
		Department:     "Almoxarifado / Contabilidade",
		Status:         "Recebida",
		AccessKey:      "35241111879788000123550000001023123456789012",
	},
	{
		IssueDate:      "11/10/2025",
		DocumentNumber: "1589",
		Direction:      "Saída",
		Counterparty:   "Oficina Mecânica Pires",
		Description:    "Venda de eixos montados",
		OperationCode:  "5.101",
		Category:       "Vendas de Produtos",
		Amount:         "12900.00",
		Department:     "Fiscal / Financeiro",
		Status:         "Entregue",
		AccessKey:      "35241111879788000123550000001589123456789012",
	},
	{
		IssueDate:      "15/10/2025",
		DocumentNumber: "2045",
		Direction:      "Entrada",
		Counterparty:   "Servmaq Serviços Ltda",
		Description:    "Manutenção de torno mecânico",
		OperationCode:  "1.401",
		Category:       "Serviços",
		Amount:         "3500.00",
		Department:     "Manutenção / Financeiro",
		Status:         "Paga",
		AccessKey:      "35241111879788000123550000002045123456789012",
	},
	{
		IssueDate:      "18/10/2025",
		DocumentNumber: "1780",
		Direction:      "Saída",
		Counterparty:   "Auto Peças Silva",
		Description:    "Venda de cubos e flanges",
		OperationCode:  "5.102",
		Category:       "Vendas de Produtos",
		Amount:         "24700.00",
		Department:     "Fiscal / Financeiro",
		Status:         "Entregue",
		AccessKey:      "35241111879788000123550000001780123456789012",
	},
}

// Cmd is the seed command
var Cmd = &cobra.Command{
	Use:   "seed",
	Short: "Append the canned example records to the worksheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := session.New(root.Cfg)

		table := sess.Table
		for _, record := range examples {
			table = table.Append(record)
		}
		if err := sess.Store.Persist(table); err != nil {
			return fmt.Errorf("failed to save worksheet: %w", err)
		}
		sess.Table = table

		root.Log.WithField("file", sess.Store.Path).Infof("Added %d example records", len(examples))
		return nil
	},
}
