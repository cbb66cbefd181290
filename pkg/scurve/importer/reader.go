package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is the tabular output of a container decoder: an optional
// key/value config sheet and the data sheet.
type Workbook struct {
	Config [][]any
	Data   [][]any
}

// Reader decodes a workbook container into tabular sheets.
type Reader interface {
	Read(path string) (*Workbook, error)
}

// FileReader reads .xlsx and .csv containers from the filesystem. In a
// two-sheet workbook the first sheet is config and the second is data; a
// single-sheet workbook (and any CSV) is all data.
type FileReader struct{}

func (FileReader) Read(path string) (*Workbook, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return readExcel(path)
	case ".csv":
		return readCSV(path)
	case ".xls":
		return nil, fmt.Errorf("%s: legacy .xls workbooks are not supported, re-save as .xlsx", path)
	default:
		return nil, fmt.Errorf("%s: unsupported file type %q", path, ext)
	}
}

func readExcel(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no worksheets", path)
	}

	// Raw values keep serial dates numeric instead of style-formatted text.
	readSheet := func(name string) ([][]any, error) {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read sheet %s of %s: %w", name, path, err)
		}
		out := make([][]any, len(rows))
		for i, cells := range rows {
			row := make([]any, len(cells))
			for j, c := range cells {
				row[j] = c
			}
			out[i] = row
		}
		return out, nil
	}

	if len(sheets) == 1 {
		data, err := readSheet(sheets[0])
		if err != nil {
			return nil, err
		}
		return &Workbook{Data: data}, nil
	}

	config, err := readSheet(sheets[0])
	if err != nil {
		return nil, err
	}
	data, err := readSheet(sheets[1])
	if err != nil {
		return nil, err
	}
	return &Workbook{Config: config, Data: data}, nil
}

func readCSV(path string) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	data := make([][]any, len(records))
	for i, cells := range records {
		row := make([]any, len(cells))
		for j, c := range cells {
			row[j] = c
		}
		data[i] = row
	}
	return &Workbook{Data: data}, nil
}
