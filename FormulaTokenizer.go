package main

import (
	"fmt"
	"sparseSheet/contracts"
	"strconv"
	"strings"
	"unicode"
)

type TokenKind uint8

const (
	TokenNumber TokenKind = iota
	TokenCellReference
	TokenBinaryOperator
)

type BinaryOperator uint8

const (
	OperatorPlus BinaryOperator = iota
	OperatorMinus
)

func (op BinaryOperator) String() string {
	if op == OperatorMinus {
		return "-"
	}

	return "+"
}

type Token struct {
	Kind     TokenKind
	Number   float64
	Address  contracts.CellAddress
	Operator BinaryOperator
}

func NumberToken(v float64) Token {
	return Token{Kind: TokenNumber, Number: v}
}

func CellReferenceToken(address contracts.CellAddress) Token {
	return Token{Kind: TokenCellReference, Address: address}
}

func OperatorToken(op BinaryOperator) Token {
	return Token{Kind: TokenBinaryOperator, Operator: op}
}

func (t Token) IsOperand() bool {
	return t.Kind != TokenBinaryOperator
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatFloat(t.Number, 'g', -1, 64)
	case TokenCellReference:
		return t.Address.String()
	default:
		return t.Operator.String()
	}
}

// Tokenize splits the expression of a formula (without the leading "=") into numbers,
// cell references and +/- operators in one left to right pass. Stray "=" characters are skipped.
func Tokenize(expression string) ([]Token, error) {
	if expression == "" {
		return nil, fmt.Errorf("%w: empty expression", contracts.MalformedExpressionError)
	}

	tokens := make([]Token, 0, 8)
	var buffer strings.Builder
	isReference := false

	for _, c := range expression {
		if c == '=' {
			continue
		}

		if c == '+' || c == '-' {
			if buffer.Len() > 0 {
				token, err := bufferToToken(buffer.String(), isReference)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, token)
				buffer.Reset()
				isReference = false
			}

			if c == '+' {
				tokens = append(tokens, OperatorToken(OperatorPlus))
			} else {
				tokens = append(tokens, OperatorToken(OperatorMinus))
			}
			continue
		}

		if unicode.IsLetter(c) {
			isReference = true
		}
		buffer.WriteRune(c)
	}

	if buffer.Len() == 0 && len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty expression", contracts.MalformedExpressionError)
	} else if buffer.Len() == 0 {
		return nil, fmt.Errorf("%w: %s ends with an operator", contracts.MalformedExpressionError, expression)
	}

	token, err := bufferToToken(buffer.String(), isReference)
	if err != nil {
		return nil, err
	}

	return append(tokens, token), nil
}

func bufferToToken(buffer string, isReference bool) (Token, error) {
	if isReference {
		address, err := ParseCellAddress(buffer)
		if err != nil {
			return Token{}, fmt.Errorf("%w: %w", contracts.MalformedExpressionError, err)
		}
		return CellReferenceToken(address), nil
	}

	if intValue, err := strconv.ParseInt(buffer, 10, 64); err == nil {
		return NumberToken(float64(intValue)), nil
	}

	floatValue, err := strconv.ParseFloat(buffer, 64)
	if err != nil {
		return Token{}, fmt.Errorf("%w: invalid number %q", contracts.MalformedExpressionError, buffer)
	}

	return NumberToken(floatValue), nil
}
