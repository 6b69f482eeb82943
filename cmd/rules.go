package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/greed/internal/data"
	"github.com/suderio/greed/internal/greed"
	"github.com/suderio/greed/internal/rules"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the active scoring pipeline",
	Long: `Prints the rules of the configured ruleset in the order they are applied.
With --list, prints the names of every ruleset that can be selected with --ruleset.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, name := range newLoader().Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		}

		rs, pipeline, err := loadPipeline()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Ruleset %s", rs.Name)
		if rs.Description != "" {
			fmt.Fprintf(out, ": %s", rs.Description)
		}
		fmt.Fprintln(out)
		for i, r := range pipeline {
			fmt.Fprintf(out, "  %d. %s\n", i+1, r.Name())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().Bool("list", false, "List available rulesets")
}

func newLoader() *data.Loader {
	return data.NewLoader(viper.GetStringSlice("data_dirs"))
}

// loadPipeline compiles the ruleset selected by configuration.
func loadPipeline() (*data.Ruleset, []greed.Rule, error) {
	rs, pipeline, err := rules.Load(newLoader(), viper.GetString("ruleset"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ruleset: %w", err)
	}
	return rs, pipeline, nil
}
