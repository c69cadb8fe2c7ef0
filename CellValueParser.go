package main

import (
	"fmt"
	"sparseSheet/contracts"
	"strconv"
	"strings"
)

// ParseCellValue classifies user input: a leading "=" makes a formula,
// then integer, then real, anything else is text.
func ParseCellValue(input string) contracts.CellValue {
	if strings.HasPrefix(input, contracts.FormulaPrefix) {
		return contracts.NewFormulaValue(input)
	}

	if intValue, err := strconv.ParseInt(input, 10, 64); err == nil {
		return contracts.NewIntegerValue(intValue)
	}

	if floatValue, err := strconv.ParseFloat(input, 64); err == nil {
		return contracts.NewRealValue(floatValue)
	}

	return contracts.NewTextValue(input)
}

// ParseCellValueText reads back the text form produced by CellValue.String
func ParseCellValueText(text string) (contracts.CellValue, error) {
	if strings.HasPrefix(text, contracts.FormulaPrefix) {
		return contracts.NewFormulaValue(text), nil
	}

	if inner, ok := unwrap(text, "Int"); ok {
		intValue, err := strconv.ParseInt(inner, 10, 64)
		if err != nil {
			return contracts.CellValue{}, fmt.Errorf("%w: %s", contracts.CellValueSyntaxError, text)
		}
		return contracts.NewIntegerValue(intValue), nil
	}

	if inner, ok := unwrap(text, "Real"); ok {
		floatValue, err := strconv.ParseFloat(inner, 64)
		if err != nil {
			return contracts.CellValue{}, fmt.Errorf("%w: %s", contracts.CellValueSyntaxError, text)
		}
		return contracts.NewRealValue(floatValue), nil
	}

	if inner, ok := unwrap(text, "Text"); ok {
		textValue, err := strconv.Unquote(inner)
		if err != nil {
			return contracts.CellValue{}, fmt.Errorf("%w: %s", contracts.CellValueSyntaxError, text)
		}
		return contracts.NewTextValue(textValue), nil
	}

	return contracts.CellValue{}, fmt.Errorf("%w: %s", contracts.CellValueSyntaxError, text)
}

func unwrap(text string, name string) (string, bool) {
	if !strings.HasPrefix(text, name+"(") || !strings.HasSuffix(text, ")") {
		return "", false
	}

	return text[len(name)+1 : len(text)-1], true
}
