package cmd

import (
	"fmt"

	"github.com/theirongolddev/taxlens/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Income, expenses and per-category totals",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd.Context())
	if err != nil {
		return err
	}
	s := in.summary

	fmt.Println()
	fmt.Println(cli.RenderTitle("LEDGER SUMMARY"))
	fmt.Println()
	fmt.Print(cli.RenderFields([]cli.Field{
		{Label: "Rows", Value: cli.FormatNumber(int64(len(in.ledger.Rows)))},
		{Label: "Dropped", Value: cli.FormatNumber(int64(in.ledger.Dropped))},
		{Label: "Total income", Value: cli.FormatMoney(s.TotalIncome), Money: true},
		{Label: "Total expenses", Value: cli.FormatMoney(s.TotalExpenses), Money: true},
		{Label: "Net", Value: cli.FormatMoney(s.Net()), Money: true},
	}))
	fmt.Println()

	if len(s.ByCategory) == 0 {
		fmt.Println("  No expense rows.")
		return nil
	}

	rows := make([][]string, 0, len(s.ByCategory))
	labelW := 0
	for _, c := range s.ByCategory {
		share := "0.0%"
		if s.TotalExpenses.IsPositive() {
			share = cli.FormatPercent(c.Amount.Div(s.TotalExpenses))
		}
		rows = append(rows, []string{c.Category, cli.FormatMoney(c.Amount), share})
		labelW = max(labelW, len(c.Category))
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Expenses by category",
		Headers: []string{"Category", "Total", "Share"},
		Rows:    rows,
	}))
	fmt.Println()

	top := s.ByCategory[0].Amount
	for _, c := range s.ByCategory {
		fmt.Println(cli.RenderHorizontalBar(c.Category, min(labelW, 20), c.Amount, top, 30))
	}
	fmt.Println()
	return nil
}
