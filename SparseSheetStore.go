package main

import (
	"log/slog"
	"sparseSheet/contracts"
)

// SparseSheetStore keeps only the cells that hold a value: one slice per column,
// each sorted by row. columnCount and rowCount are high-water marks.
type SparseSheetStore struct {
	columns     [][]contracts.Cell
	columnCount int
	rowCount    int

	evaluator contracts.FormulaEvaluator
	logger    *slog.Logger
}

func NewSparseSheetStore(evaluator contracts.FormulaEvaluator, logger *slog.Logger) *SparseSheetStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &SparseSheetStore{
		columns:   make([][]contracts.Cell, 0),
		evaluator: evaluator,
		logger:    logger,
	}
}

func (s *SparseSheetStore) ColumnCount() int {
	return s.columnCount
}

func (s *SparseSheetStore) RowCount() int {
	return s.rowCount
}

// Reset drops every cell and starts over with columnCount empty columns
func (s *SparseSheetStore) Reset(columnCount int, rowCount int) {
	s.columns = make([][]contracts.Cell, 0, columnCount)
	s.columnCount = 0
	for s.columnCount < columnCount {
		s.addColumn()
	}
	s.rowCount = rowCount
}

func (s *SparseSheetStore) Write(address contracts.CellAddress, value contracts.CellValue) {
	columnIndex, err := ColumnToIndex(address.Column)
	if err != nil {
		// addresses are validated by ParseCellAddress before they get here
		s.logger.Error("write to invalid address", "address", address.String(), "error", err)
		return
	}

	for columnIndex >= s.columnCount {
		s.addColumn()
	}

	column := s.columns[columnIndex]
	row := address.Row
	newCell := contracts.Cell{Address: address, Value: value}

	if len(column) == 0 || row > column[len(column)-1].Address.Row {
		column = append(column, newCell)
	} else {
		insertIndex := 0
		replace := false
		for _, cell := range column {
			if cell.Address.Row == row {
				replace = true
				break
			}
			if row < cell.Address.Row {
				break
			}
			insertIndex++
		}

		if replace {
			column[insertIndex].Value = value
		} else {
			column = append(column, contracts.Cell{})
			copy(column[insertIndex+1:], column[insertIndex:])
			column[insertIndex] = newCell
		}
	}
	s.columns[columnIndex] = column

	if row > s.rowCount {
		s.rowCount = row
	}
}

// Read returns the stored value as is, formulas are not evaluated
func (s *SparseSheetStore) Read(address contracts.CellAddress) (contracts.CellValue, bool) {
	columnIndex, rowIndex := s.find(address)
	if rowIndex < 0 {
		s.logger.Debug("did not find a cell", "address", address.String())
		return contracts.CellValue{}, false
	}

	s.logger.Debug("found a cell", "address", address.String())
	return s.columns[columnIndex][rowIndex].Value, true
}

// ReadMaterialized is Read with formulas replaced by their evaluated value
func (s *SparseSheetStore) ReadMaterialized(address contracts.CellAddress) (contracts.CellValue, bool) {
	value, ok := s.Read(address)
	if ok && value.IsFormula() {
		value = s.EvaluateFormula(value)
	}

	return value, ok
}

// Delete removes the cell at address. Counters are left untouched, see Shrink.
func (s *SparseSheetStore) Delete(address contracts.CellAddress) bool {
	columnIndex, rowIndex := s.find(address)
	if rowIndex < 0 {
		s.logger.Debug("nothing to delete", "address", address.String())
		return false
	}

	column := s.columns[columnIndex]
	s.columns[columnIndex] = append(column[:rowIndex], column[rowIndex+1:]...)
	s.logger.Debug("deleted cell", "address", address.String())

	return true
}

// Shrink trims empty columns from the end (interior empty columns stay)
// and lowers rowCount to the largest row still present.
func (s *SparseSheetStore) Shrink() bool {
	modified := false

	trimColumns := 0
	for i := len(s.columns) - 1; i >= 0 && len(s.columns[i]) == 0; i-- {
		trimColumns++
	}

	s.logger.Debug("removing empty columns from the end", "count", trimColumns)
	for ; trimColumns > 0; trimColumns-- {
		s.columns = s.columns[:len(s.columns)-1]
		s.columnCount--
		modified = true
	}

	maxRow := 0
	for _, column := range s.columns {
		if len(column) > 0 && column[len(column)-1].Address.Row > maxRow {
			maxRow = column[len(column)-1].Address.Row
		}
	}

	if s.rowCount != maxRow {
		modified = true
	}

	s.logger.Debug("shrinking rows", "from", s.rowCount, "to", maxRow)
	s.rowCount = maxRow

	return modified
}

// Cells lists every cell, columns first, then rows, both ascending
func (s *SparseSheetStore) Cells() []contracts.Cell {
	size := 0
	for _, column := range s.columns {
		size += len(column)
	}

	cells := make([]contracts.Cell, 0, size)
	for _, column := range s.columns {
		cells = append(cells, column...)
	}

	return cells
}

func (s *SparseSheetStore) EvaluateFormula(value contracts.CellValue) contracts.CellValue {
	result, err := s.evaluator.Evaluate(value, s)
	if err != nil {
		s.logger.Debug("formula evaluation failed", "formula", value.Text, "error", err)
	}

	return result
}

func (s *SparseSheetStore) addColumn() {
	s.columns = append(s.columns, make([]contracts.Cell, 0))
	s.columnCount++
}

// find returns the column index and the position within the column, or -1
func (s *SparseSheetStore) find(address contracts.CellAddress) (int, int) {
	columnIndex, err := ColumnToIndex(address.Column)
	if err != nil || columnIndex >= s.columnCount {
		return columnIndex, -1
	}

	for rowIndex, cell := range s.columns[columnIndex] {
		if cell.Address.Row == address.Row {
			return columnIndex, rowIndex
		}
		if cell.Address.Row > address.Row {
			break
		}
	}

	return columnIndex, -1
}
