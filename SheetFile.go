package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sparseSheet/contracts"
	"strconv"
	"strings"
)

const DefaultSheetFilePath = "sheet.txt"

// MaxCellValueLength bounds the text of one cell value, in bytes
const MaxCellValueLength = 1 << 20

// a quoted value takes at most 4 bytes per input byte ("\x00"), plus the wrapper and the address
const maxSheetLineLength = 4*MaxCellValueLength + 64

// SheetFile stores a sheet as plain text:
//
//	<column_count> <row_count>
//	<address> <value>
//	...
//
// Every save truncates and rewrites the whole file.
type SheetFile struct {
	path   string
	logger *slog.Logger
}

func NewSheetFile(path string, logger *slog.Logger) *SheetFile {
	if logger == nil {
		logger = slog.Default()
	}

	return &SheetFile{path: path, logger: logger}
}

func (f *SheetFile) Load(sheet contracts.SheetStore) error {
	f.logger.Debug("loading sheet state from file", "path", f.path)

	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		sheet.Reset(0, 0)
		return nil
	} else if err != nil {
		return err
	}
	defer file.Close()

	return f.read(file, sheet)
}

func (f *SheetFile) read(r io.Reader, sheet contracts.SheetStore) error {
	scanner := newLineScanner(r)
	sheet.Reset(0, 0)

	lineNum, line, ok := scanner.NextLine()
	if !ok {
		return scanner.Err()
	}

	columnCount, rowCount, err := parseDimensionsLine(line)
	if err != nil {
		return fmt.Errorf("%s line %d: %w", f.path, lineNum, err)
	}
	sheet.Reset(columnCount, rowCount)
	f.logger.Debug("loaded dimensions", "columns", columnCount, "rows", rowCount)

	loaded := 0
	for {
		lineNum, line, ok = scanner.NextLine()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		address, value, err := parseCellLine(line)
		if err != nil {
			return fmt.Errorf("%s line %d: %w", f.path, lineNum, err)
		}

		sheet.Write(address, value)
		loaded++
	}

	f.logger.Debug("loaded cells", "count", loaded)
	return scanner.Err()
}

func (f *SheetFile) Save(sheet contracts.SheetStore) (err error) {
	f.logger.Debug("saving sheet", "path", f.path)

	file, err := os.Create(f.path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	w := bufio.NewWriter(file)
	if err = writeSheet(w, sheet); err != nil {
		return err
	}

	return w.Flush()
}

// Clear leaves an empty sheet behind
func (f *SheetFile) Clear() error {
	f.logger.Debug("clearing sheet", "path", f.path)

	return os.WriteFile(f.path, []byte("0 0\n"), 0644)
}

func writeSheet(w io.Writer, sheet contracts.SheetStore) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", sheet.ColumnCount(), sheet.RowCount()); err != nil {
		return err
	}

	for _, cell := range sheet.Cells() {
		if _, err := fmt.Fprintf(w, "%s %s\n", cell.Address, cell.Value); err != nil {
			return err
		}
	}

	return nil
}

func parseDimensionsLine(line string) (columnCount int, rowCount int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected \"<columns> <rows>\", got %q", contracts.SheetFileError, line)
	}

	columnCount, err = strconv.Atoi(fields[0])
	if err == nil {
		rowCount, err = strconv.Atoi(fields[1])
	}
	if err != nil || columnCount < 0 || rowCount < 0 || columnCount > MaxColumnCount {
		return 0, 0, fmt.Errorf("%w: bad dimensions %q", contracts.SheetFileError, line)
	}

	return columnCount, rowCount, nil
}

func parseCellLine(line string) (address contracts.CellAddress, value contracts.CellValue, err error) {
	addressText, valueText, found := strings.Cut(line, " ")
	if !found {
		return address, value, fmt.Errorf("%w: expected \"<address> <value>\", got %q", contracts.SheetFileError, line)
	}

	address, err = ParseCellAddress(addressText)
	if err == nil {
		err = CheckColumnBound(address)
	}
	if err != nil {
		return address, value, fmt.Errorf("%w: %w", contracts.SheetFileError, err)
	}

	value, err = ParseCellValueText(valueText)
	if err != nil {
		return address, value, fmt.Errorf("%w: %w", contracts.SheetFileError, err)
	}

	return address, value, nil
}

// lineScanner wraps bufio.Scanner and keeps track of line numbers
type lineScanner struct {
	*bufio.Scanner
	lineNum int
}

func newLineScanner(r io.Reader) *lineScanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxSheetLineLength)

	return &lineScanner{Scanner: scanner}
}

func (s *lineScanner) NextLine() (int, string, bool) {
	if !s.Scan() {
		return s.lineNum, "", false
	}
	s.lineNum++

	return s.lineNum, strings.TrimSuffix(s.Text(), "\r"), true
}
