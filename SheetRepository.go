package main

import (
	"fmt"
	"log/slog"
	"sparseSheet/contracts"
	"strings"
	"sync"
)

// SheetRepository runs every operation as its own session:
// a fresh store is loaded from the sheet file, changed, and saved back when modified.
type SheetRepository struct {
	mu                sync.Mutex
	file              contracts.SheetFile
	evaluator         contracts.FormulaEvaluator
	webhookDispatcher contracts.WebhookDispatcher
	logger            *slog.Logger
}

func NewSheetRepository(
	file contracts.SheetFile, evaluator contracts.FormulaEvaluator,
	webhookDispatcher contracts.WebhookDispatcher, logger *slog.Logger,
) *SheetRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &SheetRepository{
		file:              file,
		evaluator:         evaluator,
		webhookDispatcher: webhookDispatcher,
		logger:            logger,
	}
}

func (s *SheetRepository) SetCell(address string, value string) (cell *contracts.CellResponse, err error) {
	cellAddress, err := ParseCellAddress(address)
	if err != nil {
		return nil, err
	}

	if err = CheckColumnBound(cellAddress); err != nil {
		return nil, err
	}

	if strings.ContainsAny(value, "\r\n") {
		return nil, fmt.Errorf("%w: value of %s spans multiple lines", contracts.CellValueSyntaxError, cellAddress)
	}
	if len(value) > MaxCellValueLength {
		return nil, fmt.Errorf("%w: value of %s is longer than %d bytes", contracts.CellValueSyntaxError, cellAddress, MaxCellValueLength)
	}
	cellValue := ParseCellValue(value)
	s.logger.Debug("parsed cell", "address", cellAddress.String(), "value", cellValue.String())

	err = s.session(func(sheet *SparseSheetStore) (bool, error) {
		sheet.Write(cellAddress, cellValue)
		cell = s.makeCellResponse(sheet, cellAddress, cellValue)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(cell)
	return cell, nil
}

func (s *SheetRepository) GetCell(address string, materialized bool) (cell *contracts.CellResponse, err error) {
	cellAddress, err := ParseCellAddress(address)
	if err != nil {
		return nil, err
	}

	err = s.session(func(sheet *SparseSheetStore) (bool, error) {
		value, ok := sheet.Read(cellAddress)
		if !ok {
			return false, fmt.Errorf("%s: %w", cellAddress, contracts.CellNotFoundError)
		}

		if materialized {
			cell = s.makeCellResponse(sheet, cellAddress, value)
		} else {
			cell = &contracts.CellResponse{Address: cellAddress.String(), Value: value.String(), Result: value.String()}
		}
		return false, nil
	})

	return cell, err
}

func (s *SheetRepository) DeleteCell(address string) (deleted bool, err error) {
	cellAddress, err := ParseCellAddress(address)
	if err != nil {
		return false, err
	}

	err = s.session(func(sheet *SparseSheetStore) (bool, error) {
		deleted = sheet.Delete(cellAddress)
		return deleted, nil
	})

	if err == nil && deleted {
		s.notify(&contracts.CellResponse{Address: cellAddress.String()})
	}

	return deleted, err
}

// GetSheet lists all cells with formulas evaluated
func (s *SheetRepository) GetSheet() (response *contracts.SheetResponse, err error) {
	err = s.session(func(sheet *SparseSheetStore) (bool, error) {
		cells := sheet.Cells()
		response = &contracts.SheetResponse{
			Columns: sheet.ColumnCount(),
			Rows:    sheet.RowCount(),
			Cells:   make([]*contracts.CellResponse, 0, len(cells)),
		}

		for _, cell := range cells {
			response.Cells = append(response.Cells, s.makeCellResponse(sheet, cell.Address, cell.Value))
		}
		return false, nil
	})

	return response, err
}

func (s *SheetRepository) ClearSheet() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.file.Clear()
}

func (s *SheetRepository) ShrinkSheet() (modified bool, err error) {
	err = s.session(func(sheet *SparseSheetStore) (bool, error) {
		modified = sheet.Shrink()
		return modified, nil
	})

	return modified, err
}

// session loads the sheet, runs action and saves the sheet when action reports a change
func (s *SheetRepository) session(action func(sheet *SparseSheetStore) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet := NewSparseSheetStore(s.evaluator, s.logger)
	if err := s.file.Load(sheet); err != nil {
		return err
	}

	modified, err := action(sheet)
	if err != nil || !modified {
		return err
	}

	return s.file.Save(sheet)
}

// makeCellResponse reports the stored value of a cell next to its materialized value
func (s *SheetRepository) makeCellResponse(sheet *SparseSheetStore, address contracts.CellAddress, value contracts.CellValue) *contracts.CellResponse {
	result, ok := sheet.ReadMaterialized(address)
	if !ok {
		result = value
	}

	return &contracts.CellResponse{
		Address: address.String(),
		Value:   value.String(),
		Result:  result.String(),
	}
}

func (s *SheetRepository) notify(cell *contracts.CellResponse) {
	if s.webhookDispatcher != nil {
		s.webhookDispatcher.Notify([]*contracts.CellResponse{cell})
	}
}
