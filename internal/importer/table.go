package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is the declared format of an uploaded file.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Row holds one data row keyed by column name.
type Row map[string]string

// Table is a decoded spreadsheet or CSV file. Columns preserves the
// source column order; Rows preserves the source row order.
type Table struct {
	Columns []string
	Rows    []Row
}

// Cell returns the trimmed value of the named column, or "" when the
// column is absent.
func (r Row) Cell(column string) string {
	return strings.TrimSpace(r[column])
}

// ReadTable decodes an uploaded file into a Table. headerRow is the
// zero-based index of the row that carries the column names; rows above
// it are discarded. Decode failures wrap ErrUnreadableFile.
func ReadTable(r io.Reader, format Format, headerRow int) (*Table, error) {
	if headerRow < 0 {
		return nil, fmt.Errorf("%w: header row offset must be non-negative", ErrUnreadableFile)
	}

	var records [][]string
	var err error

	switch format {
	case FormatCSV:
		records, err = readCSV(r)
	case FormatXLSX:
		records, err = readXLSX(r)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrUnreadableFile, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	if headerRow >= len(records) {
		return nil, fmt.Errorf("%w: header row %d is past the end of the file", ErrUnreadableFile, headerRow)
	}

	columns := make([]string, len(records[headerRow]))
	for i, name := range records[headerRow] {
		columns[i] = strings.TrimSpace(name)
	}

	table := &Table{Columns: columns}
	for _, rec := range records[headerRow+1:] {
		row := make(Row, len(columns))
		for i, name := range columns {
			if name == "" {
				continue
			}
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are common in field timesheets
	return reader.ReadAll()
}

func readXLSX(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	return f.GetRows(sheets[0])
}
