// Package add implements the guided record-entry command.
package add

import (
	"fmt"
	"strings"

	"rpires/nf-control/cmd/root"
	"rpires/nf-control/internal/inference"
	"rpires/nf-control/internal/normalizer"
	"rpires/nf-control/internal/session"
	"rpires/nf-control/internal/validator"

	"github.com/spf13/cobra"
)

var (
	issueDate      string
	documentNumber string
	operationCode  string
	direction      string
	counterparty   string
	description    string
	category       string
	amount         string
	department     string
	status         string
	accessKey      string
)

// Cmd is the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Validate a fiscal record and append it to the control worksheet",
	Long: `Add normalizes the entered fields, infers the transaction type and the
responsible department from the CFOP, validates the whole record and, only if
every rule passes, appends it to the worksheet and saves the file.

The CFOP may be given as "1102" or "1.102". When --type is omitted the type is
inferred from the CFOP leading digit (1/2 = Entrada, 5/6 = Saída). When
--department is omitted the CFOP or category suggestion is used.`,
	RunE: runAdd,
}

func init() {
	Cmd.Flags().StringVar(&issueDate, "date", "", "Issue date (dd/mm/yyyy)")
	Cmd.Flags().StringVar(&documentNumber, "number", "", "Document number (Nº da NF)")
	Cmd.Flags().StringVar(&operationCode, "cfop", "", "Operation code, e.g. 1.102 or 1102")
	Cmd.Flags().StringVar(&direction, "type", "", "Entrada or Saída (inferred from CFOP when omitted)")
	Cmd.Flags().StringVar(&counterparty, "party", "", "Supplier or customer name")
	Cmd.Flags().StringVar(&description, "description", "", "Free-text description")
	Cmd.Flags().StringVar(&category, "category", "", "Record category")
	Cmd.Flags().StringVar(&amount, "amount", "", "Total amount, locale formatted (e.g. 8.500,00)")
	Cmd.Flags().StringVar(&department, "department", "", "Responsible department (suggested when omitted)")
	Cmd.Flags().StringVar(&status, "status", "Pendente", "Record status")
	Cmd.Flags().StringVar(&accessKey, "access-key", "", "44-digit access key")
}

func runAdd(cmd *cobra.Command, args []string) error {
	sess := session.New(root.Cfg)

	codeNorm := normalizer.NormalizeOperationCode(operationCode)
	inferred := inference.InferDirection(codeNorm)

	resolved, warning, err := inference.ResolveDirection(direction, inferred)
	if err != nil {
		// Leave the direction unresolved; the validator reports it together
		// with every other failing field.
		resolved = ""
	}
	if warning != "" {
		root.Log.Warnf("Aviso: %s", warning)
	}

	dept := strings.TrimSpace(department)
	if dept == "" {
		dept = sess.Mappings.SuggestDepartmentByCode(codeNorm)
	}
	if dept == "" {
		dept = sess.Mappings.SuggestDepartmentByCategory(category)
	}
	if dept != "" && strings.TrimSpace(department) == "" {
		root.Log.Infof("Departamento sugerido: %s", dept)
	}

	draft := validator.Draft{
		IssueDate:      issueDate,
		DocumentNumber: documentNumber,
		Direction:      string(resolved),
		Counterparty:   counterparty,
		Description:    description,
		OperationCode:  codeNorm,
		Category:       category,
		Amount:         amount,
		Department:     dept,
		Status:         status,
		AccessKey:      accessKey,
	}

	if errs := validator.Validate(draft); len(errs) > 0 {
		for _, e := range errs {
			fmt.Printf("• %s\n", e)
		}
		return fmt.Errorf("registro inválido: %d erro(s); nada foi gravado", len(errs))
	}

	record := validator.Record(draft)
	if err := sess.Commit(record); err != nil {
		return fmt.Errorf("failed to save worksheet: %w", err)
	}

	root.Log.WithField("file", sess.Store.Path).Info("Registro adicionado e planilha atualizada")
	fmt.Printf("%s | NF %s | %s | CFOP %s | R$ %s | %s\n",
		record.IssueDate, record.DocumentNumber, record.Direction,
		record.OperationCode, record.Amount, record.Department)
	return nil
}
