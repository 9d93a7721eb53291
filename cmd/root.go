package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "rmxtheory",
	Short: "Interval arithmetic for music theory",
	Long: `rmxtheory adds, subtracts and inverts musical intervals and transposes pitches.

Without a subcommand it starts the interactive calculator. Arguments that
start with a minus sign, like descending intervals, go after "--":

  rmxtheory eval -- -M3 + P5`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .rmxtheory.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("tritone", "", "spelling of six half steps: aug or dim (default aug)")
	rootCmd.PersistentFlags().Bool("unicode", false, "render accidentals as ♯ ♭ 𝄪 𝄫")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("tritone", rootCmd.PersistentFlags().Lookup("tritone"))
	_ = viper.BindPFlag("unicode", rootCmd.PersistentFlags().Lookup("unicode"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".rmxtheory")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("RMXTHEORY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
