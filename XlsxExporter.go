package main

import (
	"github.com/unidoc/unioffice/spreadsheet"
	"sort"
	"sparseSheet/contracts"
)

const xlsxSheetName = "Sheet1"

// XlsxExporter writes the materialized cells of a sheet into a single worksheet workbook
type XlsxExporter struct{}

func NewXlsxExporter() *XlsxExporter {
	return &XlsxExporter{}
}

func (e *XlsxExporter) Export(sheet contracts.SheetStore, path string) error {
	wb := spreadsheet.New()
	ws := wb.AddSheet()
	ws.SetName(xlsxSheetName)

	for _, cell := range rowMajor(sheet.Cells()) {
		if err := CheckColumnBound(cell.Address); err != nil {
			return err
		}

		value := cell.Value
		if value.IsFormula() {
			value = sheet.EvaluateFormula(value)
		}

		target := ws.Cell(cell.Address.String())
		if number, ok := value.Float(); ok {
			target.SetNumber(number)
		} else {
			target.SetString(value.Text)
		}
	}

	if err := wb.Validate(); err != nil {
		return err
	}

	return wb.SaveToFile(path)
}

// rowMajor reorders the column-first cells of a sheet row by row, as worksheets are stored
func rowMajor(cells []contracts.Cell) []contracts.Cell {
	ordered := make([]contracts.Cell, len(cells))
	copy(ordered, cells)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Address.Row < ordered[j].Address.Row
	})

	return ordered
}
