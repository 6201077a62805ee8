// Package features defines the column labels of the feature vectors the
// extraction stage writes. Existing feature files depend on these labels,
// so they are generated in exactly one place and must never change.
package features

import "fmt"

// ColumnNames returns the labels conv_0 .. conv_{n-1}, in order. A
// non-positive width yields nil.
func ColumnNames(n int) []string {
	if n <= 0 {
		return nil
	}
	cols := make([]string, n)
	for i := range cols {
		cols[i] = fmt.Sprintf("conv_%d", i)
	}
	return cols
}
