package store

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// ExportCSV writes the table to w as CSV with the worksheet column headers.
func (s *RecordStore) ExportCSV(table Table, w io.Writer) error {
	if err := gocsv.Marshal(&table.Records, w); err != nil {
		return fmt.Errorf("error writing CSV export: %w", err)
	}
	log.Debugf("Exported %d records as CSV", table.Len())
	return nil
}
