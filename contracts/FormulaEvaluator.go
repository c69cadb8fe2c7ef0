package contracts

import "errors"

type FormulaEvaluator interface {
	// Evaluate never fails as a whole: on any failure it returns TextLiteral(ErrorMarker)
	// together with the reason, so that callers can log it.
	Evaluate(value CellValue, sheet CellReader) (CellValue, error)
}

var MalformedExpressionError = errors.New("malformed expression")

var EvaluationError = errors.New("evaluation failure")
