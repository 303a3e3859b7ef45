// Package list implements the table listing command.
package list

import (
	"fmt"
	"os"
	"text/tabwriter"

	"rpires/nf-control/cmd/root"
	"rpires/nf-control/internal/session"

	"github.com/spf13/cobra"
)

// Cmd is the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "Print the records currently in the control worksheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := session.New(root.Cfg)

		if sess.Table.Len() == 0 {
			fmt.Println("Planilha vazia.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Data\tNF\tTipo\tCFOP\tCategoria\tValor\tDepartamento\tSituação")
		for _, r := range sess.Table.Records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				r.IssueDate, r.DocumentNumber, r.Direction, r.OperationCode,
				r.Category, r.Amount, r.Department, r.Status)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\n%d registro(s) em %s\n", sess.Table.Len(), sess.Store.Path)
		return nil
	},
}
