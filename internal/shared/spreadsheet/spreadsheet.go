package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv"
)

var ErrEmpty = errors.New("worksheet is empty")

// Sheet adalah satu worksheet: Headers menjadi baris pertama.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Write membuat workbook satu sheet: baris pertama header, sisanya data.
func Write(sheet string, headers []string, rows [][]any) ([]byte, error) {
	return WriteSheets(Sheet{Name: sheet, Headers: headers, Rows: rows})
}

// WriteSheets menulis beberapa sheet berurutan. Sheet pertama menggantikan
// sheet bawaan excelize; nama kosong memakai nama bawaan.
func WriteSheets(sheets ...Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, ErrEmpty
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("new style: %w", err)
	}

	for i, sh := range sheets {
		name, err := prepareSheet(f, i, sh.Name)
		if err != nil {
			return nil, err
		}

		if err := setRow(f, name, 1, toAny(sh.Headers)); err != nil {
			return nil, err
		}
		if len(sh.Headers) > 0 {
			last, _ := excelize.CoordinatesToCellName(len(sh.Headers), 1)
			_ = f.SetCellStyle(name, "A1", last, bold)
		}
		for n, row := range sh.Rows {
			if err := setRow(f, name, n+2, row); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func prepareSheet(f *excelize.File, i int, name string) (string, error) {
	if i == 0 {
		defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
		if name == "" || name == defaultSheet {
			return defaultSheet, nil
		}
		if err := f.SetSheetName(defaultSheet, name); err != nil {
			return "", fmt.Errorf("rename sheet: %w", err)
		}
		return name, nil
	}
	if name == "" {
		name = fmt.Sprintf("Sheet%d", i+1)
	}
	if _, err := f.NewSheet(name); err != nil {
		return "", fmt.Errorf("new sheet %s: %w", name, err)
	}
	return name, nil
}

// ReadRows membaca sheet pertama xlsx, atau seluruh isi csv jika ekstensinya .csv.
func ReadRows(data []byte, filename string) ([][]string, error) {
	var rows [][]string

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		r := csv.NewReader(bytes.NewReader(data))
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true
		out, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = out
	default:
		out, err := ReadSheet(data, "")
		if err != nil {
			return nil, err
		}
		rows = out
	}

	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return rows, nil
}

// ReadSheet membaca satu sheet xlsx berdasarkan nama; nama kosong berarti sheet pertama.
func ReadSheet(data []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" || slices.Index(f.GetSheetList(), sheet) < 0 {
		return nil, fmt.Errorf("worksheet %q not found", sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}

// HeaderIndex memetakan nama header (case-insensitive, tanpa spasi) ke index kolom.
func HeaderIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[NormalizeHeader(h)] = i
	}
	return idx
}

func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), " ", ""))
}

// Cell mengembalikan isi kolom atau string kosong jika baris lebih pendek.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func setRow(f *excelize.File, sheet string, n int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", n, err)
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
