package main

import (
	"fmt"
	"math"
	"sparseSheet/contracts"
	"strconv"
	"strings"
)

const columnBase = 26

// MaxColumnCount is the widest sheet that can be saved, loaded or exported (A..XFD)
const MaxColumnCount = 16384

// ColumnToIndex reads the label as a bijective base-26 numeral (A=1 ... Z=26, AA=27)
// and returns it as a 0-based column index.
func ColumnToIndex(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("%w: empty column", contracts.AddressSyntaxError)
	}

	index := 0
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !isLetter(c) {
			return 0, fmt.Errorf("%w: column %s", contracts.AddressSyntaxError, label)
		}

		index = index*columnBase + int(toUpper(c)-'A'+1)
		if index > math.MaxInt32 {
			return 0, fmt.Errorf("%w: column %s is out of range", contracts.AddressSyntaxError, label)
		}
	}

	return index - 1, nil
}

// ParseCellAddress accepts letters strictly followed by digits, e.g. "b12".
// Letters are normalized to uppercase, the row must be positive.
func ParseCellAddress(text string) (address contracts.CellAddress, err error) {
	letterEnd := 0
	for letterEnd < len(text) && isLetter(text[letterEnd]) {
		letterEnd++
	}

	if letterEnd == 0 || letterEnd == len(text) {
		return address, fmt.Errorf("%w: %s", contracts.AddressSyntaxError, text)
	}

	rowText := text[letterEnd:]
	for i := 0; i < len(rowText); i++ {
		if rowText[i] < '0' || rowText[i] > '9' {
			return address, fmt.Errorf("%w: %s", contracts.AddressSyntaxError, text)
		}
	}

	row, err := strconv.Atoi(rowText)
	if err != nil || row < 1 {
		return address, fmt.Errorf("%w: %s", contracts.AddressSyntaxError, text)
	}

	address.Column = strings.ToUpper(text[:letterEnd])
	address.Row = row

	if _, err = ColumnToIndex(address.Column); err != nil {
		return contracts.CellAddress{}, err
	}

	return address, nil
}

// CheckColumnBound rejects addresses past the last column a sheet file may hold
func CheckColumnBound(address contracts.CellAddress) error {
	index, err := ColumnToIndex(address.Column)
	if err != nil {
		return err
	}

	if index >= MaxColumnCount {
		return fmt.Errorf("%w: column %s is past the last column XFD", contracts.AddressSyntaxError, address.Column)
	}

	return nil
}

// CanonicalizeAddress returns the normalized text form of an address ("a01" -> "A1")
func CanonicalizeAddress(text string) (string, error) {
	address, err := ParseCellAddress(text)
	if err != nil {
		return "", err
	}

	return address.String(), nil
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}

	return c
}
