/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/suderio/greed/internal/greed"
	"github.com/suderio/greed/internal/session"
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score [dice...]",
	Short: "Score a roll of dice",
	Long: `Scores the given dice with the configured ruleset.
Dice may be separated by spaces or commas:

	greed score 1 1 1 5 1
	greed score [1,1,1,5,1]`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dice, err := parseDice(args)
		if err != nil {
			return err
		}

		_, pipeline, err := loadPipeline()
		if err != nil {
			return err
		}

		b := greed.Explain(dice, pipeline)
		log.Debug().Ints("dice", dice).Int("points", b.Points).Int("steps", len(b.Steps)).Msg("scored")

		if explain, _ := cmd.Flags().GetBool("explain"); explain {
			fmt.Fprintln(cmd.OutOrStdout(), (&session.ScoredEvent{Breakdown: b}).Message())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), b.Points)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().BoolP("explain", "e", false, "Show which rules scored which dice")
}

// parseDice accepts dice as separate arguments, comma lists or a bracketed list.
func parseDice(args []string) ([]int, error) {
	joined := strings.NewReplacer("[", " ", "]", " ", ",", " ").Replace(strings.Join(args, " "))

	var dice []int
	for _, field := range strings.Fields(joined) {
		d, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid die %q: %w", field, err)
		}
		dice = append(dice, d)
	}
	return dice, nil
}
