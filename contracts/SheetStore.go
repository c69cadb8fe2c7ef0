package contracts

// CellReader is the part of the sheet a formula is allowed to see
type CellReader interface {
	Read(address CellAddress) (CellValue, bool)
}

type SheetStore interface {
	CellReader
	Write(address CellAddress, value CellValue)
	Delete(address CellAddress) bool
	Shrink() bool
	Reset(columnCount int, rowCount int)
	Cells() []Cell
	ColumnCount() int
	RowCount() int
	EvaluateFormula(value CellValue) CellValue
	ReadMaterialized(address CellAddress) (CellValue, bool)
}
