package main

import (
	"fmt"
	"sparseSheet/contracts"
	"strings"
)

type FormulaEvaluator struct{}

func NewFormulaEvaluator() *FormulaEvaluator {
	return &FormulaEvaluator{}
}

// Evaluate tokenizes, builds and walks the expression of a formula cell.
// Any failure collapses into the #ERR text value; the error is returned for diagnostics only.
func (e *FormulaEvaluator) Evaluate(value contracts.CellValue, sheet contracts.CellReader) (contracts.CellValue, error) {
	// not formula
	if !value.IsFormula() {
		return value, nil
	}

	result, err := e.evaluateExpression(strings.TrimPrefix(value.Text, contracts.FormulaPrefix), sheet)
	if err != nil {
		return contracts.NewTextValue(contracts.ErrorMarker), fmt.Errorf("%s: %w", value.Text, err)
	}

	return contracts.NewRealValue(result), nil
}

func (e *FormulaEvaluator) evaluateExpression(expression string, sheet contracts.CellReader) (float64, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return 0, err
	}

	tree, err := BuildExpressionTree(tokens)
	if err != nil {
		return 0, err
	}

	return e.evaluateNode(tree, sheet)
}

func (e *FormulaEvaluator) evaluateNode(node *ExpressionNode, sheet contracts.CellReader) (float64, error) {
	// empty tree -> no value
	if node == nil {
		return 0, fmt.Errorf("%w: empty expression tree", contracts.EvaluationError)
	}

	switch node.Token.Kind {
	case TokenNumber:
		return node.Token.Number, nil

	case TokenCellReference:
		return e.resolveReference(node.Token.Address, sheet)

	default:
		left, err := e.evaluateNode(node.Left, sheet)
		if err != nil {
			return 0, err
		}

		right, err := e.evaluateNode(node.Right, sheet)
		if err != nil {
			return 0, err
		}

		if node.Token.Operator == OperatorMinus {
			return left - right, nil
		}
		return left + right, nil
	}
}

// resolveReference looks up one level only: a reference to another formula is a failure
func (e *FormulaEvaluator) resolveReference(address contracts.CellAddress, sheet contracts.CellReader) (float64, error) {
	if sheet == nil {
		return 0, fmt.Errorf("%w: %s: no sheet to read from", contracts.EvaluationError, address)
	}

	value, ok := sheet.Read(address)
	if !ok {
		return 0, fmt.Errorf("%w: %s: %w", contracts.EvaluationError, address, contracts.CellNotFoundError)
	}

	number, ok := value.Float()
	if !ok {
		return 0, fmt.Errorf("%w: %s holds %s, not a number", contracts.EvaluationError, address, value)
	}

	return number, nil
}
