package main

import (
	"github.com/stretchr/testify/assert"
	"math/rand"
	"sparseSheet/contracts"
	"testing"
)

func _address(text string) contracts.CellAddress {
	address, err := ParseCellAddress(text)
	if err != nil {
		panic(err)
	}

	return address
}

func _newStore() *SparseSheetStore {
	return NewSparseSheetStore(NewFormulaEvaluator(), nil)
}

func _assertColumnsSorted(t *testing.T, store *SparseSheetStore) {
	for columnIndex, column := range store.columns {
		for i := 1; i < len(column); i++ {
			assert.Less(t, column[i-1].Address.Row, column[i].Address.Row, "column %d", columnIndex)
		}
	}
}

func TestSparseSheetStore_Write(t *testing.T) {
	t.Run("write_and_read", func(t *testing.T) {
		store := _newStore()
		store.Write(_address("A1"), contracts.NewIntegerValue(5))

		value, ok := store.Read(_address("A1"))
		assert.True(t, ok)
		assert.Equal(t, contracts.NewIntegerValue(5), value)
		assert.Equal(t, 1, store.ColumnCount())
		assert.Equal(t, 1, store.RowCount())
	})

	t.Run("grows_columns_and_rows", func(t *testing.T) {
		store := _newStore()
		store.Write(_address("C7"), contracts.NewTextValue("x"))

		assert.Equal(t, 3, store.ColumnCount())
		assert.Equal(t, 7, store.RowCount())

		_, ok := store.Read(_address("A1"))
		assert.False(t, ok)
	})

	t.Run("replace_in_place", func(t *testing.T) {
		store := _newStore()
		store.Write(_address("B2"), contracts.NewIntegerValue(1))
		store.Write(_address("B2"), contracts.NewRealValue(2.5))

		value, ok := store.Read(_address("B2"))
		assert.True(t, ok)
		assert.Equal(t, contracts.NewRealValue(2.5), value)
		assert.Len(t, store.Cells(), 1)
	})

	t.Run("insert_keeps_rows_sorted", func(t *testing.T) {
		store := _newStore()
		store.Write(_address("A5"), contracts.NewIntegerValue(5))
		store.Write(_address("A1"), contracts.NewIntegerValue(1))
		store.Write(_address("A3"), contracts.NewIntegerValue(3))
		store.Write(_address("A9"), contracts.NewIntegerValue(9))

		cells := store.Cells()
		assert.Len(t, cells, 4)
		assert.Equal(t, "A1", cells[0].Address.String())
		assert.Equal(t, "A3", cells[1].Address.String())
		assert.Equal(t, "A5", cells[2].Address.String())
		assert.Equal(t, "A9", cells[3].Address.String())
	})

	t.Run("random_writes_and_deletes", func(t *testing.T) {
		store := _newStore()
		expected := map[contracts.CellAddress]int64{}
		random := rand.New(rand.NewSource(42))
		columns := []string{"A", "B", "C", "AA"}

		for i := 0; i < 500; i++ {
			address := contracts.CellAddress{Column: columns[random.Intn(len(columns))], Row: random.Intn(40) + 1}
			if random.Intn(3) == 0 {
				_, exists := expected[address]
				assert.Equal(t, exists, store.Delete(address))
				delete(expected, address)
			} else {
				store.Write(address, contracts.NewIntegerValue(int64(i)))
				expected[address] = int64(i)
			}
		}

		_assertColumnsSorted(t, store)
		assert.Len(t, store.Cells(), len(expected))
		for address, expectedValue := range expected {
			value, ok := store.Read(address)
			assert.True(t, ok, address.String())
			assert.Equal(t, contracts.NewIntegerValue(expectedValue), value, address.String())
		}
	})
}

func TestSparseSheetStore_Delete(t *testing.T) {
	store := _newStore()
	store.Write(_address("B4"), contracts.NewIntegerValue(1))

	assert.True(t, store.Delete(_address("B4")))
	assert.False(t, store.Delete(_address("B4")))
	assert.False(t, store.Delete(_address("Z99")))

	_, ok := store.Read(_address("B4"))
	assert.False(t, ok)

	// counters are high-water marks until shrink
	assert.Equal(t, 2, store.ColumnCount())
	assert.Equal(t, 4, store.RowCount())
}

func TestSparseSheetStore_Shrink(t *testing.T) {
	t.Run("trailing_columns_and_rows", func(t *testing.T) {
		store := _newStore()
		store.Write(_address("A1"), contracts.NewIntegerValue(1))
		store.Write(_address("C5"), contracts.NewIntegerValue(2))
		store.Delete(_address("C5"))

		assert.True(t, store.Shrink())
		assert.Equal(t, 1, store.ColumnCount())
		assert.Equal(t, 1, store.RowCount())

		assert.False(t, store.Shrink())
	})

	t.Run("interior_empty_column_stays", func(t *testing.T) {
		store := _newStore()
		store.Write(_address("A2"), contracts.NewIntegerValue(1))
		store.Write(_address("C3"), contracts.NewIntegerValue(2))

		assert.False(t, store.Shrink())
		assert.Equal(t, 3, store.ColumnCount())
		assert.Equal(t, 3, store.RowCount())
	})

	t.Run("only_first_column_used", func(t *testing.T) {
		store := _newStore()
		store.Reset(3, 1)
		store.Write(_address("A1"), contracts.NewIntegerValue(1))

		assert.True(t, store.Shrink())
		assert.Equal(t, 1, store.ColumnCount())
		assert.Equal(t, 1, store.RowCount())
	})

	t.Run("leading_empty_column_stays", func(t *testing.T) {
		store := _newStore()
		store.Reset(3, 2)
		store.Write(_address("B2"), contracts.NewIntegerValue(2))

		assert.True(t, store.Shrink())
		assert.Equal(t, 2, store.ColumnCount())
		assert.Equal(t, 2, store.RowCount())

		_, ok := store.Read(_address("B2"))
		assert.True(t, ok)
	})

	t.Run("empty_sheet", func(t *testing.T) {
		store := _newStore()
		store.Reset(4, 10)

		assert.True(t, store.Shrink())
		assert.Equal(t, 0, store.ColumnCount())
		assert.Equal(t, 0, store.RowCount())
	})
}

func TestSparseSheetStore_Reset(t *testing.T) {
	store := _newStore()
	store.Write(_address("A1"), contracts.NewIntegerValue(1))
	store.Reset(3, 8)

	assert.Empty(t, store.Cells())
	assert.Equal(t, 3, store.ColumnCount())
	assert.Equal(t, 8, store.RowCount())
}

func TestSparseSheetStore_Cells(t *testing.T) {
	store := _newStore()
	store.Write(_address("B1"), contracts.NewIntegerValue(3))
	store.Write(_address("A2"), contracts.NewIntegerValue(2))
	store.Write(_address("A1"), contracts.NewIntegerValue(1))

	cells := store.Cells()
	assert.Equal(t, []contracts.Cell{
		{Address: _address("A1"), Value: contracts.NewIntegerValue(1)},
		{Address: _address("A2"), Value: contracts.NewIntegerValue(2)},
		{Address: _address("B1"), Value: contracts.NewIntegerValue(3)},
	}, cells)
}

func TestSparseSheetStore_ReadMaterialized(t *testing.T) {
	store := _newStore()
	store.Write(_address("A1"), contracts.NewIntegerValue(10))
	store.Write(_address("A2"), contracts.NewFormulaValue("=A1+5"))
	store.Write(_address("A3"), contracts.NewFormulaValue("=A2+1"))

	value, ok := store.ReadMaterialized(_address("A2"))
	assert.True(t, ok)
	assert.Equal(t, contracts.NewRealValue(15), value)

	// references resolve one level only
	value, ok = store.ReadMaterialized(_address("A3"))
	assert.True(t, ok)
	assert.Equal(t, contracts.NewTextValue(contracts.ErrorMarker), value)

	raw, ok := store.Read(_address("A2"))
	assert.True(t, ok)
	assert.Equal(t, contracts.NewFormulaValue("=A1+5"), raw)

	_, ok = store.ReadMaterialized(_address("B1"))
	assert.False(t, ok)
}
