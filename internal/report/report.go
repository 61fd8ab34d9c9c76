// Package report renders an estimate as a CSV category export, a paginated
// plain-text report, or a markdown document.
package report

import (
	"time"

	"github.com/theirongolddev/taxlens/internal/advisor"
	"github.com/theirongolddev/taxlens/internal/model"
	"github.com/theirongolddev/taxlens/internal/tax"
)

// Report is everything a rendered report shows.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Year        int
	Status      tax.FilingStatus
	Summary     model.Summary
	Result      model.TaxResult
	Suggestions []advisor.Suggestion
}

// DefaultTitle is used when Report.Title is empty.
const DefaultTitle = "Tax Optimization Report"

func (r Report) title() string {
	if r.Title != "" {
		return r.Title
	}
	return DefaultTitle
}
