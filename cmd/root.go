/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "greed",
	Short: "Score Greed dice rolls and play with the companion exercises",
	Long: `greed scores rolls of the Greed dice game.

A roll of up to five dice is scored by an ordered pipeline of rules:
three ones are worth 1000, three of any other face 100 times the face,
and single ones and fives 100 and 50. Custom pipelines can be written
as YAML rulesets, with CEL formulas for anything beyond the classic rules.

The triangle and lines commands cover the remaining exercises of the kit.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(viper.GetString("log_level"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.greed.yaml)")
	rootCmd.PersistentFlags().StringP("ruleset", "r", "standard", "Ruleset name or path to a ruleset YAML file")
	rootCmd.PersistentFlags().StringSlice("data_dir", nil, "Directories searched for rulesets/<name>.yaml")
	rootCmd.PersistentFlags().String("log_level", "warn", "Log level (trace, debug, info, warn, error)")

	_ = viper.BindPFlag("ruleset", rootCmd.PersistentFlags().Lookup("ruleset"))
	_ = viper.BindPFlag("data_dirs", rootCmd.PersistentFlags().Lookup("data_dir"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log_level"))

	viper.SetDefault("dice", "5d6")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory and the working directory with name ".greed" (without extension).
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".greed")
	}

	viper.SetEnvPrefix("greed")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setupLogging points the global zerolog logger at stderr in console format.
func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}
