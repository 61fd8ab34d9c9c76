package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/theirongolddev/taxlens/internal/model"
	"github.com/theirongolddev/taxlens/internal/tax"
)

// Export is the input of a category CSV export.
type Export struct {
	Year       int
	Status     tax.FilingStatus
	Categories []model.CategoryTotal
	Result     model.TaxResult
}

// Header returns the CSV header for year.
func Header(year int) []string {
	return []string{
		"Category",
		"Total_Amount",
		"Filing_Status",
		"Standard_Deduction_" + strconv.Itoa(year),
		"Taxable_Income",
		"Estimated_Federal_Tax",
	}
}

// WriteCategoryCSV writes one row per expense category, each repeating the
// filing status and estimate. Only the header is written when there are no
// categories.
func WriteCategoryCSV(w io.Writer, e Export) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(e.Year)); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	std := e.Result.StandardDeduction.StringFixed(2)
	taxable := e.Result.TaxableIncome.StringFixed(2)
	owed := e.Result.EstimatedFederalTax.StringFixed(2)
	for _, c := range e.Categories {
		rec := []string{c.Category, c.Amount.StringFixed(2), e.Status.String(), std, taxable, owed}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
