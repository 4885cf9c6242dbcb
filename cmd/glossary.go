package cmd

import (
	"fmt"

	"github.com/theirongolddev/ethicsim/internal/cli"
	"github.com/theirongolddev/ethicsim/internal/content"

	"github.com/spf13/cobra"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary [pattern]",
	Short: "Look up the terms used in insights and trade-offs",
	Long:  "Print glossary entries. The optional pattern is a glob such as 'bias*' or '*privacy*'.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGlossary,
}

func init() {
	rootCmd.AddCommand(glossaryCmd)
}

func runGlossary(_ *cobra.Command, args []string) error {
	pattern := ""
	if len(args) == 1 {
		pattern = args[0]
	}

	entries := content.Default().MatchGlossary(pattern)
	if len(entries) == 0 {
		fmt.Printf("\n  No glossary terms match %q.\n\n", pattern)
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Term, e.Definition})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     "Glossary",
		Headers:   []string{"Term", "Definition"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true},
	}))
	fmt.Println()
	return nil
}
