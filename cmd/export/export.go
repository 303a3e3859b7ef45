// Package export implements the worksheet export command.
package export

import (
	"fmt"
	"os"

	"rpires/nf-control/cmd/root"
	"rpires/nf-control/internal/session"

	"github.com/spf13/cobra"
)

var (
	output string
	format string
)

// Cmd is the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the record table to a new file without touching the worksheet",
	Long: `Export serializes the current table to a separate output file. The xlsx
format produces a workbook with the same sheet and column schema as the
backing worksheet; csv produces a flat file with the same headers.`,
	RunE: runExport,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")
	Cmd.Flags().StringVar(&format, "format", "xlsx", "Output format: xlsx or csv")
	_ = Cmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	sess := session.New(root.Cfg)

	switch format {
	case "xlsx":
		data, err := sess.Store.ExportBytes(sess.Table)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("error writing export file: %w", err)
		}
	case "csv":
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("error creating export file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				root.Log.WithError(err).Warn("Failed to close export file")
			}
		}()
		if err := sess.Store.ExportCSV(sess.Table, f); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported export format: %s (use 'xlsx' or 'csv')", format)
	}

	root.Log.WithField("output", output).Infof("Exported %d record(s)", sess.Table.Len())
	return nil
}
