package cmd

import (
	"fmt"

	"github.com/theirongolddev/taxlens/internal/cli"

	"github.com/spf13/cobra"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Deduction suggestions based on expense categories",
	RunE:  runAdvise,
}

func init() {
	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DEDUCTION SUGGESTIONS"))
	fmt.Println()
	for _, s := range in.advisor.Recommend(in.ledger.Rows) {
		fmt.Printf("  • %s\n", s)
	}
	fmt.Println()
	fmt.Println("  Educational estimate only. Not tax advice.")
	fmt.Println()
	return nil
}
