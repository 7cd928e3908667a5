package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/parliament/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "parliament",
	Short: "Simulated parliamentary chamber",
	Long: `Parliament simulates a legislative chamber: parliamentary groups,
their politicians, a docket of law proposals, a debate floor where members
speak in the voice of their political orientation, and votes that carry or
reject each proposal.

Use 'parliament start' for the interactive chamber or 'parliament simulate'
for a scripted session.`,
	SilenceUsage: true,
}

var cfgFile string

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/parliament/config.yaml)")
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// No config type: both config.yaml and config.toml are found
		viper.SetConfigName("config")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/parliament")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("PARLIAMENT")
	// e.g. PARLIAMENT_CHAMBER_VOTE_THRESHOLD for chamber.vote_threshold
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
