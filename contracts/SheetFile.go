package contracts

import "errors"

type SheetFile interface {
	// Load replaces the state of the sheet. A missing file leaves an empty sheet.
	Load(sheet SheetStore) error
	Save(sheet SheetStore) error
	Clear() error
}

var SheetFileError = errors.New("invalid sheet file")
