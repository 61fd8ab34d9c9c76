package cmd

import (
	"fmt"

	"github.com/theirongolddev/taxlens/internal/cli"
	"github.com/theirongolddev/taxlens/internal/tax"

	"github.com/spf13/cobra"
)

var flagAllStatuses bool

var bracketsCmd = &cobra.Command{
	Use:   "brackets",
	Short: "Show the bracket schedule and standard deduction",
	RunE:  runBrackets,
}

func init() {
	bracketsCmd.Flags().BoolVar(&flagAllStatuses, "all", false, "Show every filing status")
	rootCmd.AddCommand(bracketsCmd)
}

func runBrackets(_ *cobra.Command, _ []string) error {
	in, err := loadTaxInputs()
	if err != nil {
		return err
	}

	statuses := []tax.FilingStatus{in.status}
	if flagAllStatuses {
		statuses = tax.Statuses
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TAX BRACKETS  %d", in.table.Year())))
	fmt.Println()

	for _, status := range statuses {
		schedule, err := in.table.Brackets(status)
		if err != nil {
			return err
		}
		std, _ := in.table.StandardDeduction(status)

		rows := make([][]string, 0, len(schedule))
		for _, b := range schedule {
			upper := "and up"
			if !b.IsUnbounded() {
				upper = cli.FormatMoney(b.Upper.Decimal)
			}
			rows = append(rows, []string{cli.FormatRate(b.Rate), cli.FormatMoney(b.Lower), upper})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("%s · standard deduction %s", status, cli.FormatMoney(std)),
			Headers: []string{"Rate", "From", "To"},
			Rows:    rows,
		}))
		fmt.Println()
	}
	return nil
}
