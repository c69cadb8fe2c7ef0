package main

import (
	"github.com/stretchr/testify/assert"
	"sparseSheet/contracts"
	"testing"
)

func TestParseCellValue(t *testing.T) {
	testCases := map[string]contracts.CellValue{
		"5":        contracts.NewIntegerValue(5),
		"-12":      contracts.NewIntegerValue(-12),
		"1.5":      contracts.NewRealValue(1.5),
		"1e3":      contracts.NewRealValue(1000),
		"hello":    contracts.NewTextValue("hello"),
		"":         contracts.NewTextValue(""),
		"12abc":    contracts.NewTextValue("12abc"),
		"=A1+1":    contracts.NewFormulaValue("=A1+1"),
		"=":        contracts.NewFormulaValue("="),
		" 5":       contracts.NewTextValue(" 5"),
		"Int(5)":   contracts.NewTextValue("Int(5)"),
		"=garbage": contracts.NewFormulaValue("=garbage"),
	}

	for input, expected := range testCases {
		assert.Equal(t, expected, ParseCellValue(input), input)
	}
}

func TestParseCellValueText(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testCases := map[string]contracts.CellValue{
			"Int(5)":              contracts.NewIntegerValue(5),
			"Int(-3)":             contracts.NewIntegerValue(-3),
			"Real(1.5)":           contracts.NewRealValue(1.5),
			"Real(4.0)":           contracts.NewRealValue(4),
			`Text("hello world")`: contracts.NewTextValue("hello world"),
			`Text("say \"hi\"")`:  contracts.NewTextValue(`say "hi"`),
			`Text("")`:            contracts.NewTextValue(""),
			"=A1+B2":              contracts.NewFormulaValue("=A1+B2"),
		}

		for text, expected := range testCases {
			actual, err := ParseCellValueText(text)
			assert.NoError(t, err, text)
			assert.Equal(t, expected, actual, text)
		}
	})

	t.Run("reads_back_string_form", func(t *testing.T) {
		for _, value := range []contracts.CellValue{
			contracts.NewIntegerValue(42),
			contracts.NewRealValue(0.1),
			contracts.NewRealValue(1e21),
			contracts.NewTextValue("with ) and ( and \\"),
			contracts.NewTextValue("Int(5)"),
			contracts.NewFormulaValue("=1-2"),
		} {
			actual, err := ParseCellValueText(value.String())
			assert.NoError(t, err, value.String())
			assert.Equal(t, value, actual, value.String())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, text := range []string{"", "5", "Int(x)", "Real(abc)", "Text(abc)", "Int(5", "Bool(true)"} {
			_, err := ParseCellValueText(text)
			assert.ErrorIs(t, err, contracts.CellValueSyntaxError, text)
		}
	})
}
