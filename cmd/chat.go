package cmd

import (
	"fmt"

	"github.com/theirongolddev/ethicsim/internal/chat"
	"github.com/theirongolddev/ethicsim/internal/cli"
	"github.com/theirongolddev/ethicsim/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagChatBuild   buildFlags
	flagChatMessage string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask a configured assistant something and see how it answers",
	Example: "  ethicsim chat --filtering minimal --behavior directive -m \"I have a headache\"\n" +
		"  ethicsim chat --data user --adapt -m \"who made you?\"",
	RunE: runChat,
}

func init() {
	addBuildFlags(chatCmd, &flagChatBuild)
	chatCmd.Flags().StringVarP(&flagChatMessage, "message", "m", "", "Message to send (required)")
	_ = chatCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	// Chat works on a partial build; only the choices made need to be valid.
	if err := applyBuild(sess, flagChatBuild, string(config.DefaultTier(cfg))); err != nil {
		return err
	}

	sel := sess.CurrentSelections()
	fmt.Printf("\n  %s %s\n", cli.Muted("you:"), flagChatMessage)
	fmt.Printf("  %s %s\n\n", cli.OK("assistant:"), chat.Respond(flagChatMessage, sel))
	return nil
}
