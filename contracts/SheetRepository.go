package contracts

type CellResponse struct {
	Address string `json:"address"`
	Value   string `json:"value"`
	Result  string `json:"result"`
}

type SheetResponse struct {
	Columns int             `json:"columns"`
	Rows    int             `json:"rows"`
	Cells   []*CellResponse `json:"cells"`
}

type SheetRepository interface {
	SetCell(address string, value string) (*CellResponse, error)
	GetCell(address string, materialized bool) (*CellResponse, error)
	DeleteCell(address string) (bool, error)
	GetSheet() (*SheetResponse, error)
	ClearSheet() error
	ShrinkSheet() (bool, error)
}
