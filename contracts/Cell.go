package contracts

import (
	"errors"
	"strconv"
	"strings"
)

// FormulaPrefix marks a cell value as a formula
const FormulaPrefix = "="

// ErrorMarker is the value a formula cell takes when it can not be evaluated
const ErrorMarker = "#ERR"

type CellValueKind uint8

const (
	IntegerLiteral CellValueKind = iota
	RealLiteral
	TextLiteral
	FormulaLiteral
)

// CellAddress is a column label (uppercase letters) plus a 1-based row
type CellAddress struct {
	Column string
	Row    int
}

func (a CellAddress) String() string {
	return a.Column + strconv.Itoa(a.Row)
}

// CellValue is a tagged union over the four literal kinds.
// Text holds the string of both TextLiteral and FormulaLiteral values,
// for formulas it keeps the leading FormulaPrefix.
type CellValue struct {
	Kind    CellValueKind
	Integer int64
	Real    float64
	Text    string
}

func NewIntegerValue(v int64) CellValue {
	return CellValue{Kind: IntegerLiteral, Integer: v}
}

func NewRealValue(v float64) CellValue {
	return CellValue{Kind: RealLiteral, Real: v}
}

func NewTextValue(v string) CellValue {
	return CellValue{Kind: TextLiteral, Text: v}
}

func NewFormulaValue(v string) CellValue {
	return CellValue{Kind: FormulaLiteral, Text: v}
}

func (v CellValue) IsFormula() bool {
	return v.Kind == FormulaLiteral
}

// Float returns the numeric value; ok is false for text and formulas
func (v CellValue) Float() (value float64, ok bool) {
	switch v.Kind {
	case IntegerLiteral:
		return float64(v.Integer), true
	case RealLiteral:
		return v.Real, true
	}

	return 0, false
}

// String renders the persisted/printed text form: Int(5), Real(1.5), Text("abc") or the raw formula.
func (v CellValue) String() string {
	switch v.Kind {
	case IntegerLiteral:
		return "Int(" + strconv.FormatInt(v.Integer, 10) + ")"
	case RealLiteral:
		return "Real(" + FormatReal(v.Real) + ")"
	case FormulaLiteral:
		return v.Text
	default:
		return "Text(" + strconv.Quote(v.Text) + ")"
	}
}

// FormatReal always keeps a fractional part so that a real never reads back as an integer
func FormatReal(v float64) string {
	formatted := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(formatted, ".eEnN") {
		return formatted
	}

	return formatted + ".0"
}

// Cell is owned by the column that contains it
type Cell struct {
	Address CellAddress
	Value   CellValue
}

var AddressSyntaxError = errors.New("bad cell location")

var CellValueSyntaxError = errors.New("bad cell value")

var CellNotFoundError = errors.New("cell not found")
