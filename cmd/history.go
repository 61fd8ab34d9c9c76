package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/taxlens/internal/cli"
	"github.com/theirongolddev/taxlens/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Recent estimates",
	RunE:  runHistory,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one recorded estimate",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of entries")
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func openHistory() (*store.History, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return store.Open(cfg.HistoryPath())
}

func runHistory(cmd *cobra.Command, _ []string) error {
	h, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = h.Close() }()

	ctx := cmd.Context()
	entries, err := h.Recent(ctx, flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	total, err := h.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting history: %w", err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ESTIMATE HISTORY  %d of %d", len(entries), total)))
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("  No estimates recorded yet. Run `taxlens estimate` first.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Status.String(),
			cli.FormatMoney(e.Result.TaxableIncome),
			cli.FormatMoney(e.Result.EstimatedFederalTax),
			strings.Join(e.Ledgers, ", "),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"ID", "When", "Status", "Taxable", "Tax", "Ledgers"},
		Rows:      rows,
		LeftAlign: []int{1, 2, 5},
	}))
	fmt.Println()

	trend, err := h.Trend(ctx, flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("reading trend: %w", err)
	}
	if len(trend) > 1 {
		top := decimal.Max(trend[0], trend[1:]...)
		fmt.Println("  Estimated tax, oldest first")
		for i, v := range trend {
			fmt.Println(cli.RenderHorizontalBar(fmt.Sprintf("#%d", i+1), 4, v, top, 30))
		}
		fmt.Println()
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}
	h, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = h.Close() }()

	if err := h.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("deleting entry %d: %w", id, err)
	}
	fmt.Printf("  Deleted entry %d\n", id)
	return nil
}
