// Package store persists the fiscal record table to an xlsx worksheet.
package store

import (
	"fmt"
	"os"

	"rpires/nf-control/internal/config"
	"rpires/nf-control/internal/models"
	"rpires/nf-control/internal/recerror"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Table is the in-memory record table. It is append-only: Append returns a
// new table and never mutates the receiver's rows.
type Table struct {
	Records []models.FiscalRecord
}

// Append returns a new table with the record added as the last row. Insertion
// order is the only ordering guarantee; duplicates are permitted.
func (t Table) Append(record models.FiscalRecord) Table {
	records := make([]models.FiscalRecord, len(t.Records), len(t.Records)+1)
	copy(records, t.Records)
	return Table{Records: append(records, record)}
}

// Len returns the number of rows in the table.
func (t Table) Len() int {
	return len(t.Records)
}

// RecordStore reads and writes the record table against a single worksheet
// file with a fixed sheet name and column schema.
type RecordStore struct {
	Path  string
	Sheet string
}

// NewRecordStore creates a store for the given worksheet file and sheet.
func NewRecordStore(path, sheet string) *RecordStore {
	return &RecordStore{Path: path, Sheet: sheet}
}

// Load reads the backing worksheet into a table. A missing file yields an
// empty table. An existing file that cannot be read, or that lacks the
// expected sheet, is logged as a warning and also yields an empty table; the
// store never fails to load. Loaded columns are reconciled against the fixed
// schema: missing columns become empty, order is forced, extras are dropped.
func (s *RecordStore) Load() Table {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		log.Debugf("Worksheet %s does not exist yet, starting empty", s.Path)
		return Table{}
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		readErr := &recerror.StoreReadError{Path: s.Path, Err: err}
		log.Warnf("%v; starting from an empty table", readErr)
		return Table{}
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close worksheet")
		}
	}()

	rows, err := f.GetRows(s.Sheet)
	if err != nil {
		readErr := &recerror.StoreReadError{Path: s.Path, Sheet: s.Sheet, Err: err}
		log.Warnf("%v; starting from an empty table", readErr)
		return Table{}
	}
	if len(rows) == 0 {
		return Table{}
	}

	// Map the file's header row to schema positions, then rebuild every row
	// in schema order. This is the one-time schema reconcile step.
	colIndex := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		colIndex[header] = i
	}

	table := Table{Records: make([]models.FiscalRecord, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		cells := make([]string, len(models.Columns))
		for i, column := range models.Columns {
			if idx, ok := colIndex[column]; ok && idx < len(row) {
				cells[i] = row[idx]
			}
		}
		table.Records = append(table.Records, models.RecordFromRow(cells))
	}

	log.Debugf("Loaded %d records from %s", table.Len(), s.Path)
	return table
}

// Persist overwrites the backing worksheet's sheet with the full table
// contents.
func (s *RecordStore) Persist(table Table) error {
	f, err := buildWorkbook(s.Sheet, table)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close worksheet")
		}
	}()

	if err := f.SaveAs(s.Path); err != nil {
		return fmt.Errorf("error writing worksheet %s: %w", s.Path, err)
	}
	log.Debugf("Saved %d records to %s", table.Len(), s.Path)
	return nil
}

// ExportBytes serializes the table to an in-memory xlsx buffer with the same
// schema, independent of the backing file.
func (s *RecordStore) ExportBytes(table Table) ([]byte, error) {
	f, err := buildWorkbook(s.Sheet, table)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close worksheet")
		}
	}()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error serializing worksheet: %w", err)
	}
	return buf.Bytes(), nil
}

// buildWorkbook renders the table into a fresh workbook with a single sheet.
func buildWorkbook(sheet string, table Table) (*excelize.File, error) {
	f := excelize.NewFile()

	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("error creating sheet %s: %w", sheet, err)
		}
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("error removing default sheet: %w", err)
		}
	}

	header := make([]interface{}, len(models.Columns))
	for i, column := range models.Columns {
		header[i] = column
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("error writing header row: %w", err)
	}

	for i, record := range table.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("error computing cell name: %w", err)
		}
		row := record.Row()
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", i+1, err)
		}
	}

	return f, nil
}
