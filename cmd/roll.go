package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/greed/internal/engine"
	"github.com/suderio/greed/internal/greed"
	"github.com/suderio/greed/internal/session"
)

// rollCmd represents the roll command
var rollCmd = &cobra.Command{
	Use:   "roll [dice]",
	Short: "Roll dice and score them",
	Long: `Rolls a dice expression (default from the "dice" setting, 5d6) and scores
the kept dice with the configured ruleset.

	greed roll
	greed roll 6d6
	greed roll 6d6kh5`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := viper.GetString("dice")
		if len(args) == 1 {
			expr = args[0]
		}

		_, pipeline, err := loadPipeline()
		if err != nil {
			return err
		}

		res, err := engine.RollString(expr)
		if err != nil {
			return err
		}

		evt := &session.ScoredEvent{Roll: &res, Breakdown: greed.Explain(res.Faces(), pipeline)}
		fmt.Fprintln(cmd.OutOrStdout(), evt.Message())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)
}
