package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/suderio/greed/internal/triangle"
)

var triangleCmd = &cobra.Command{
	Use:   "triangle a b c",
	Short: "Classify a triangle by its sides",
	Long: `Prints equilateral, isosceles or scalene for the given side lengths.
Sides that cannot form a triangle are an error unless --lenient is set.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sides [3]int
		for i, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid side %q: %w", arg, err)
			}
			sides[i] = n
		}

		if lenient, _ := cmd.Flags().GetBool("lenient"); lenient {
			fmt.Fprintln(cmd.OutOrStdout(), triangle.Classify(sides[0], sides[1], sides[2]))
			return nil
		}

		t, err := triangle.New(sides[0], sides[1], sides[2])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Kind())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(triangleCmd)
	triangleCmd.Flags().Bool("lenient", false, "Classify without checking that the sides form a triangle")
}
