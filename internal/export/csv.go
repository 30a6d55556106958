// Package export writes transaction lists to files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Veraticus/finboard/internal/model"
	"github.com/shopspring/decimal"
)

// DateLayout is the date format used in exported rows.
const DateLayout = "2006-01-02"

// Header is the CSV header row.
var Header = []string{"id", "date", "description", "category", "type", "amount"}

// WriteCSV writes txns, in the given order, as CSV with a header row.
// Amounts are unsigned with two decimals; the type column carries the sign.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, t := range txns {
		record := []string{
			t.ID,
			t.Date.Format(DateLayout),
			t.Description,
			t.Category,
			string(t.Type),
			decimal.NewFromFloat(t.Amount).StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write transaction %s: %w", t.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
