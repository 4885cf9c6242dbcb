package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/ethicsim/internal/cli"
	"github.com/theirongolddev/ethicsim/internal/config"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration and where files live",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	path := configPath()
	status := cli.OK("found")
	if _, err := os.Stat(path); err != nil {
		status = cli.Warn("not found, using defaults")
	}

	fmt.Println()
	fmt.Printf("  Config:  %s (%s)\n", path, status)
	fmt.Printf("  Archive: %s\n", config.ArchivePath())
	fmt.Printf("  Log:     %s\n", config.LogPath(cfg))
	fmt.Printf("  Exports: %s\n", config.ExportDir(cfg))
	fmt.Println()

	if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Println()
	return nil
}
