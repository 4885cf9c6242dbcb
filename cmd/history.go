package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/ethicsim/internal/cli"
	"github.com/theirongolddev/ethicsim/internal/config"
	"github.com/theirongolddev/ethicsim/internal/store"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List exported summaries from the report archive",
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print an archived summary (an id prefix is enough)",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Maximum number of reports to list")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func openArchiveForRead() (*store.Archive, error) {
	a, err := store.Open(config.ArchivePath())
	if err != nil {
		return nil, fmt.Errorf("opening report archive: %w", err)
	}
	return a, nil
}

func runHistory(_ *cobra.Command, _ []string) error {
	a, err := openArchiveForRead()
	if err != nil {
		return err
	}
	defer a.Close()

	reports, err := a.ListReports(flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("\n  No archived summaries yet. Export one from the summary screen.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.ID.String()[:8],
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Tier.Label(),
			cli.FormatAmount(r.Spent),
			cli.FormatPercent(r.SpentPercent),
			string(r.Efficiency),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("REPORT HISTORY"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"ID", "Exported", "Tier", "Spent", "Used", "Efficiency"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 2: true, 5: true},
	}))
	fmt.Printf("\n  %s\n\n", cli.Muted("ethicsim history show <id> prints a summary"))
	return nil
}

func runHistoryShow(_ *cobra.Command, args []string) error {
	a, err := openArchiveForRead()
	if err != nil {
		return err
	}
	defer a.Close()

	r, err := a.GetReport(args[0])
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no archived summary with id %q", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Print(r.Text)
	if r.ExportPath != "" {
		fmt.Printf("\n  %s\n", cli.Muted("Exported to "+r.ExportPath))
	}
	return nil
}
