/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/greed/internal/session"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive shell",
	Long: `Starts the read-eval-print loop for scoring and rolling dice.
Usage:
	> score 1 1 1 5 1
	> roll 5d6
	> triangle 3 4 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, pipeline, err := loadPipeline()
		if err != nil {
			return err
		}

		app := session.NewSession(session.Options{
			Ruleset:     rs.Name,
			Rules:       pipeline,
			DefaultDice: viper.GetString("dice"),
		})

		return RunTUI(app)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
