package cmd

import (
	"fmt"

	"github.com/theirongolddev/ethicsim/internal/cli"
	"github.com/theirongolddev/ethicsim/internal/config"
	"github.com/theirongolddev/ethicsim/internal/model"

	"github.com/spf13/cobra"
)

var flagCostsTier string

var costsCmd = &cobra.Command{
	Use:   "costs",
	Short: "Show tier budgets and what every option costs",
	RunE:  runCosts,
}

func init() {
	costsCmd.Flags().StringVarP(&flagCostsTier, "tier", "t", "", "Only show prices at this tier")
	rootCmd.AddCommand(costsCmd)
}

func runCosts(_ *cobra.Command, _ []string) error {
	table, err := config.LoadCostTable(cfg)
	if err != nil {
		return err
	}

	tiers := model.Tiers
	if flagCostsTier != "" {
		t, ok := model.ParseTier(flagCostsTier)
		if !ok {
			return fmt.Errorf("unknown tier %q (want small, medium or large)", flagCostsTier)
		}
		tiers = []model.Tier{t}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("OPTION COSTS"))
	fmt.Println()
	fmt.Print(renderCosts(table, tiers))
	fmt.Println()
	fmt.Printf("  %s\n\n", cli.Muted("n/a: not available at that tier"))
	return nil
}

func renderCosts(table config.CostTable, tiers []model.Tier) string {
	headers := []string{""}
	budgetRow := []string{"Budget"}
	for _, t := range tiers {
		headers = append(headers, t.Label())
		budgetRow = append(budgetRow, cli.FormatAmount(table.Budget(t)))
	}

	var out string
	out += cli.RenderTable(cli.Table{
		Title:   "Tiers",
		Headers: headers,
		Rows:    [][]string{budgetRow},
	})

	for _, c := range model.Categories {
		rows := make([][]string, 0, len(table.Options(c)))
		for _, opt := range table.Options(c) {
			row := []string{opt.Label}
			for _, t := range tiers {
				row = append(row, formatCost(table.Cost(c, opt.ID, t)))
			}
			rows = append(rows, row)
		}
		out += "\n" + cli.RenderTable(cli.Table{
			Title:   c.Label(),
			Headers: headers,
			Rows:    rows,
		})
	}
	return out
}

func formatCost(c model.Cost) string {
	if !c.Priced {
		return "n/a"
	}
	if c.Amount.IsZero() {
		return "free"
	}
	return cli.FormatAmount(c.Amount)
}
