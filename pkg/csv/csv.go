package csv

import (
	"bytes"
	stdcsv "encoding/csv"
	"fmt"
)

// Record is anything renderable as one exported CSV row.
type Record interface {
	Date() string
	Payee() string
	Memo() string
	Amount() float64
}

type FilterFunc[T Record] func(T) bool

// Create renders records as CSV with a header row. Descriptions may contain
// commas, so rows go through encoding/csv.
func Create[T Record](records []T, filter FilterFunc[T]) []byte {
	var buf bytes.Buffer
	w := stdcsv.NewWriter(&buf)
	_ = w.Write([]string{"Date", "Description", "Category", "Amount"})
	for _, r := range records {
		if filter == nil || filter(r) {
			_ = w.Write([]string{
				r.Date(),
				r.Payee(),
				r.Memo(),
				fmt.Sprintf("%.2f", r.Amount()),
			})
		}
	}
	w.Flush()
	return buf.Bytes()
}
