package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/ethicsim/internal/cli"
	"github.com/theirongolddev/ethicsim/internal/config"
	"github.com/theirongolddev/ethicsim/internal/flow"
	"github.com/theirongolddev/ethicsim/internal/model"
	"github.com/theirongolddev/ethicsim/internal/report"
	"github.com/theirongolddev/ethicsim/internal/session"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// buildFlags describes a build given on the command line.
type buildFlags struct {
	Tier      string
	Data      []string
	Filtering string
	Behavior  string
	Bias      string
	Adapt     bool
}

var (
	flagBuild   buildFlags
	flagOut     string
	flagArchive bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run a build without the TUI and print its summary",
	Example: "  ethicsim build --tier medium --data public,licensed --filtering moderate \\\n" +
		"    --behavior empathetic --bias basic --out summary.txt",
	RunE: runBuild,
}

func init() {
	addBuildFlags(buildCmd, &flagBuild)
	buildCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Also write the summary to this file")
	buildCmd.Flags().BoolVar(&flagArchive, "archive", false, "Record the summary in the report archive")
	rootCmd.AddCommand(buildCmd)
}

func addBuildFlags(c *cobra.Command, f *buildFlags) {
	c.Flags().StringVarP(&f.Tier, "tier", "t", "", "Budget tier: small, medium or large (default from config)")
	c.Flags().StringSliceVar(&f.Data, "data", nil, "Training data sources, comma separated")
	c.Flags().StringVar(&f.Filtering, "filtering", "", "Content filtering level")
	c.Flags().StringVar(&f.Behavior, "behavior", "", "Interaction behavior")
	c.Flags().StringVar(&f.Bias, "bias", "", "Bias handling strategy")
	c.Flags().BoolVar(&f.Adapt, "adapt", false, "Adapt behavior to each user")
}

func runBuild(_ *cobra.Command, _ []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	if err := applyBuild(sess, flagBuild, string(config.DefaultTier(cfg))); err != nil {
		return err
	}
	if err := completeBuild(sess); err != nil {
		return err
	}

	text := sess.SummaryText()
	fmt.Print(text)

	if flagOut != "" {
		if err := report.WriteTo(flagOut, text); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "\n  %s\n", cli.OK("Saved to "+flagOut))
	}

	if flagArchive {
		saver, closeArchive, err := openArchive()
		if err != nil {
			return err
		}
		defer closeArchive()
		if saver == nil {
			fmt.Fprintf(os.Stderr, "  %s\n", cli.Warn("Archiving is disabled in the config"))
			return nil
		}
		rep, err := report.Archive(saver, sess.Summary(), text, flagOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "  %s\n", cli.Muted("Archived as "+rep.ID.String()))
	}
	return nil
}

// applyBuild makes every choice in f on sess and stops at the first rejection.
// defaultTier is used when f names no tier.
func applyBuild(sess *session.Session, f buildFlags, defaultTier string) error {
	name := f.Tier
	if name == "" {
		name = defaultTier
	}
	tier, ok := model.ParseTier(name)
	if !ok {
		return fmt.Errorf("unknown tier %q (want small, medium or large)", name)
	}
	if _, err := sess.SelectTier(tier, false); err != nil {
		return fmt.Errorf("selecting tier: %w", err)
	}

	for _, id := range f.Data {
		if err := choose(sess, model.CategoryData, model.OptionID(id)); err != nil {
			return err
		}
	}
	singles := []struct {
		c  model.Category
		id string
	}{
		{model.CategoryFiltering, f.Filtering},
		{model.CategoryBehavior, f.Behavior},
		{model.CategoryBias, f.Bias},
	}
	for _, s := range singles {
		if s.id == "" {
			continue
		}
		if err := choose(sess, s.c, model.OptionID(s.id)); err != nil {
			return err
		}
	}

	if f.Adapt {
		if _, err := sess.SetAdaptToUser(true); err != nil {
			return rejection{what: "Adapt to user", err: err}
		}
	}
	return nil
}

func choose(sess *session.Session, c model.Category, id model.OptionID) error {
	if _, err := sess.Choose(c, id); err != nil {
		return rejection{what: fmt.Sprintf("%s %q", c.Label(), id), err: err}
	}
	log.Debug().Str("category", string(c)).Str("option", string(id)).
		Str("remaining", sess.RemainingBudget().String()).Msg("chosen")
	return nil
}

// completeBuild walks the flow to the summary step.
func completeBuild(sess *session.Session) error {
	for sess.Step() != flow.StepSummary {
		step := sess.Step()
		if _, err := sess.AdvanceStep(); err != nil {
			return rejection{what: step.Title(), err: err}
		}
	}
	return nil
}

// rejection reports a refused choice in the user's terms.
type rejection struct {
	what string
	err  error
}

func (r rejection) Error() string { return r.what + ": " + session.Reason(r.err) }

func (r rejection) Unwrap() error { return r.err }
