package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/greed/internal/engine"
	"github.com/suderio/greed/internal/greed"
	"github.com/suderio/greed/internal/session"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Roll many hands and summarize their scores",
	Long: `Rolls the configured dice expression over and over, scores every hand with
the configured ruleset and prints the mean score, the best hand, how often a
hand scored nothing and the most common scores.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		hands, _ := cmd.Flags().GetInt("hands")
		top, _ := cmd.Flags().GetInt("top")
		quiet, _ := cmd.Flags().GetBool("quiet")
		expr := viper.GetString("dice")

		if hands <= 0 {
			return fmt.Errorf("--hands must be positive, got %d", hands)
		}

		rs, pipeline, err := loadPipeline()
		if err != nil {
			return err
		}

		var bar *progressbar.ProgressBar
		if !quiet {
			bar = progressbar.Default(int64(hands), fmt.Sprintf("Rolling %s", expr))
		}

		var tally session.Tally
		for i := 0; i < hands; i++ {
			res, err := engine.RollString(expr)
			if err != nil {
				return err
			}
			tally.Add(greed.ScoreWith(res.Faces(), pipeline))
			if bar != nil {
				_ = bar.Add(1)
			}
		}
		log.Debug().Str("ruleset", rs.Name).Int("hands", hands).Msg("simulation complete")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nRuleset %s, %d hands of %s\n", rs.Name, hands, expr)
		fmt.Fprintf(out, "Mean score: %.1f\n", tally.Mean())
		fmt.Fprintf(out, "Best hand:  %d\n", tally.Best)
		fmt.Fprintf(out, "Busts:      %d (%.1f%%)\n", tally.Busts, 100*float64(tally.Busts)/float64(tally.Rolls))
		fmt.Fprintln(out, "Most common scores:")
		for _, s := range tally.Frequent(top) {
			fmt.Fprintf(out, "  %5d  %d\n", s, tally.Scores[s])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().Int("hands", 10000, "Number of hands to roll")
	simulateCmd.Flags().Int("top", 5, "Number of most common scores to show")
	simulateCmd.Flags().Bool("quiet", false, "Hide the progress bar")
	simulateCmd.Flags().String("dice", "", "Dice expression rolled for each hand (overrides the dice setting)")
	_ = viper.BindPFlag("dice", simulateCmd.Flags().Lookup("dice"))
}
