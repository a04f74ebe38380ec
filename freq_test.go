package huffpuff

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrequencyTable_Counting(t *testing.T) {
	var ft FrequencyTable

	for i := 0; i < 6; i++ {
		ft.Increment('A')
	}
	for i := 0; i < 3; i++ {
		ft.Increment('B')
	}
	ft.Increment('C')
	ft.Increment('C')

	if got := ft.Count('A'); got != 6 {
		t.Errorf("count of A: expect 6, got %d", got)
	}
	if got := ft.Count('Z'); got != 0 {
		t.Errorf("count of Z: expect 0, got %d", got)
	}
	if got := ft.Total(); got != 11 {
		t.Errorf("total: expect 11, got %d", got)
	}

	ft.SetCount('B', 10)
	if got := ft.Total(); got != 18 {
		t.Errorf("total after SetCount: expect 18, got %d", got)
	}
}

func TestFrequencyTable_HeaderRoundTrip(t *testing.T) {
	var ft FrequencyTable
	ft.SetCount(0, 1)
	ft.SetCount(13, 42)
	ft.SetCount(255, 7)

	var buf bytes.Buffer
	n, err := ft.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != HeaderSize {
		t.Errorf("wrong header size: expect %d, got %d", HeaderSize, n)
	}

	var restored FrequencyTable
	if _, err := restored.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if restored.Count(symbol) != ft.Count(symbol) {
			t.Errorf("count of symbol %d: expect %d, got %d",
				symbol, ft.Count(symbol), restored.Count(symbol))
		}
	}
	if restored.Total() != ft.Total() {
		t.Errorf("total: expect %d, got %d", ft.Total(), restored.Total())
	}
}

func TestFrequencyTable_TruncatedHeader(t *testing.T) {
	type testRow struct {
		name string
		data []byte
	}

	testData := [...]testRow{
		{name: "empty", data: nil},
		{name: "partial-entry", data: make([]byte, 5)},
		{name: "missing-one-entry", data: make([]byte, HeaderSize-8)},
		{name: "missing-one-byte", data: make([]byte, HeaderSize-1)},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var ft FrequencyTable
			_, err := ft.ReadFrom(bytes.NewReader(row.data))
			if !errors.Is(err, ErrTruncatedHeader) {
				t.Errorf("expect ErrTruncatedHeader, got %v", err)
			}
		})
	}
}

func TestFrequencyTable_ReadFromReplaces(t *testing.T) {
	var src FrequencyTable
	src.SetCount('x', 3)

	var buf bytes.Buffer
	if _, err := src.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	var dst FrequencyTable
	dst.SetCount('y', 99)
	if _, err := dst.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if got := dst.Count('y'); got != 0 {
		t.Errorf("stale count survived ReadFrom: %d", got)
	}
	if got := dst.Total(); got != 3 {
		t.Errorf("total: expect 3, got %d", got)
	}
}
