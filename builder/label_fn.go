package builder

import (
	"fmt"
	"strconv"
)

// LabelFn renders a display label from a zero-based node index.
type LabelFn func(idx int) string

// DecimalLabelFn returns the decimal index: 0→"0", 42→"42".
func DecimalLabelFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnLabelFn returns spreadsheet column names: 0→"A", 25→"Z",
// 26→"AA". Panics if idx < 0.
func ExcelColumnLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnLabelFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// WithDecimalLabels is WithLabelFn(DecimalLabelFn).
func WithDecimalLabels() Option {
	return WithLabelFn(DecimalLabelFn)
}
