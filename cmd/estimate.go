package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/theirongolddev/taxlens/internal/cli"
	"github.com/theirongolddev/taxlens/internal/model"
	"github.com/theirongolddev/taxlens/internal/store"
	"github.com/theirongolddev/taxlens/internal/tax"

	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate federal tax for the ledger (default)",
	RunE:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd.Context())
	if err != nil {
		return err
	}
	res, err := in.estimate()
	if err != nil {
		return err
	}
	brackets, err := in.table.Brackets(in.status)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TAX ESTIMATE  %d · %s", in.table.Year(), in.status)))
	fmt.Println()
	fmt.Print(cli.RenderFields(resultFields(in.summary, res, brackets)))
	fmt.Println()

	shares, err := in.table.Breakdown(in.request())
	if err != nil {
		return err
	}
	if len(shares) > 0 {
		fmt.Print(renderBreakdown(shares, cli.FormatMoney(res.EstimatedFederalTax)))
		fmt.Println()
	}
	if len(in.summary.ByCategory) == 0 && in.summary.TotalIncome.IsZero() {
		fmt.Print(cli.RenderWarning("Ledger has no income or expense rows."))
		fmt.Println()
	}

	if in.cfg.History.Enabled {
		recordEstimate(cmd.Context(), in, res)
	}
	return nil
}

func resultFields(s model.Summary, res model.TaxResult, brackets []tax.Bracket) []cli.Field {
	return []cli.Field{
		{Label: "Total income", Value: cli.FormatMoney(s.TotalIncome), Money: true},
		{Label: "Total expenses", Value: cli.FormatMoney(s.TotalExpenses), Money: true},
		{Label: "Adjusted gross income", Value: cli.FormatMoney(res.AdjustedGrossIncome), Money: true},
		{Label: "Standard deduction", Value: cli.FormatMoney(res.StandardDeduction), Money: true},
		{Label: "Deduction used", Value: fmt.Sprintf("%s (%s)", cli.FormatMoney(res.DeductionUsed), res.DeductionType)},
		{Label: "Taxable income", Value: cli.FormatMoney(res.TaxableIncome), Money: true},
		{Label: "Estimated federal tax", Value: cli.FormatMoney(res.EstimatedFederalTax), Money: true},
		{Label: "Effective rate", Value: cli.FormatPercent(tax.EffectiveRate(res.TaxableIncome, brackets))},
		{Label: "Marginal rate", Value: cli.FormatPercent(tax.MarginalRate(res.TaxableIncome, brackets))},
	}
}

func renderBreakdown(shares []tax.BracketShare, total string) string {
	rows := make([][]string, 0, len(shares)+2)
	for _, sh := range shares {
		upper := "and up"
		if !sh.Bracket.IsUnbounded() {
			upper = cli.FormatMoney(sh.Bracket.Upper.Decimal)
		}
		rows = append(rows, []string{
			cli.FormatRate(sh.Bracket.Rate),
			cli.FormatMoney(sh.Bracket.Lower),
			upper,
			cli.FormatMoney(sh.Amount),
			cli.FormatMoney(sh.Tax),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", "", "", total})

	return cli.RenderTable(cli.Table{
		Title:   "Bracket breakdown",
		Headers: []string{"Rate", "From", "To", "Taxed", "Tax"},
		Rows:    rows,
	})
}

// recordEstimate saves the run to history. Failures are logged only.
func recordEstimate(ctx context.Context, in *inputs, res model.TaxResult) {
	path := in.cfg.HistoryPath()
	h, err := store.Open(path)
	if err != nil {
		slog.Warn("history unavailable", "path", path, "error", err)
		return
	}
	defer func() { _ = h.Close() }()

	id, err := h.Save(ctx, store.Entry{
		Year:    in.table.Year(),
		Status:  in.status,
		Ledgers: in.paths,
		Summary: in.summary,
		Result:  res,
	})
	if err != nil {
		slog.Warn("saving estimate to history", "path", path, "error", err)
		return
	}
	slog.Debug("saved estimate", "id", id, "path", path)
}
