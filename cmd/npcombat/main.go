package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"npcombat/internal/config"
	"npcombat/internal/logging"
)

var (
	cfgFile  string
	v        = viper.New()
	settings config.Settings
	log      zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "npcombat",
	Short: "Resolve Neptune's Pride style battles offline",
	Long: `npcombat predicts the outcome of fights between garrisons and fleets:
who wins, and how many ships each surviving group keeps.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.LoadSettings(v, cfgFile)
		if err != nil {
			return err
		}
		settings = s
		log = logging.New(os.Stderr, settings.LogLevel, settings.LogPretty)
		log.Debug().Str("config", v.ConfigFileUsed()).Int("workers", settings.Workers).Msg("settings loaded")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./npcombat.yaml or $HOME/.npcombat/npcombat.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringP("out", "o", "", "write JSON output to this file instead of stdout")
	_ = v.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("output", rootCmd.PersistentFlags().Lookup("out"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// writeOutput prints b or writes it to the configured output file.
func writeOutput(b []byte) error {
	if settings.Output == "" {
		_, err := fmt.Fprintln(os.Stdout, string(b))
		return err
	}
	if err := os.WriteFile(settings.Output, b, 0644); err != nil {
		return err
	}
	log.Info().Str("file", settings.Output).Msg("output written")
	return nil
}
