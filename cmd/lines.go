package cmd

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/suderio/greed/internal/sandwich"
)

var linesCmd = &cobra.Command{
	Use:   "lines FILE",
	Short: "Count the lines of a file or find the first matching line",
	Long: `Without --find, prints the number of lines in FILE.
With --find REGEX, prints the first line of FILE that matches REGEX.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, _ := cmd.Flags().GetString("find")
		if pattern == "" {
			n, err := sandwich.CountLines(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}
		line, err := sandwich.FindLine(args[0], re)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), line)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linesCmd)
	linesCmd.Flags().StringP("find", "f", "", "Print the first line matching this regular expression")
}
