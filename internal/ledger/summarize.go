package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taxlens/internal/model"
)

// Summarize totals income and expenses and sums expenses per category.
// Categories are ordered by amount descending; equal amounts keep the order
// in which the category first appeared. Expenses with a blank category count
// toward TotalExpenses but get no category entry. Rows of any other kind are
// ignored.
func Summarize(rows []model.Row) model.Summary {
	s := model.Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		ByCategory:    []model.CategoryTotal{},
	}

	pos := make(map[string]int)
	for _, r := range rows {
		switch r.Kind {
		case model.Income:
			s.TotalIncome = s.TotalIncome.Add(r.Amount)
		case model.Expense:
			s.TotalExpenses = s.TotalExpenses.Add(r.Amount)
			if r.Category == "" {
				continue
			}
			i, ok := pos[r.Category]
			if !ok {
				i = len(s.ByCategory)
				pos[r.Category] = i
				s.ByCategory = append(s.ByCategory, model.CategoryTotal{Category: r.Category, Amount: decimal.Zero})
			}
			s.ByCategory[i].Amount = s.ByCategory[i].Amount.Add(r.Amount)
		}
	}

	sort.SliceStable(s.ByCategory, func(i, j int) bool {
		return s.ByCategory[i].Amount.GreaterThan(s.ByCategory[j].Amount)
	})
	return s
}
