// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: given the same idx, it always returns the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PaddedIDFn returns an IDFn rendering idx zero-padded to width digits,
// e.g. width=3: 7→"007". Padded IDs sort lexicographically in index order,
// so core.Graph.Vertices() enumerates them in construction order.
// Panics if width < 1.
func PaddedIDFn(width int) IDFn {
	if width < 1 {
		panic(fmt.Sprintf("PaddedIDFn: width must be ≥ 1, got %d", width))
	}
	format := "%0" + strconv.Itoa(width) + "d"

	return func(idx int) string {
		return fmt.Sprintf(format, idx)
	}
}

// ExcelColumnIDFn returns the “Excel-style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
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
