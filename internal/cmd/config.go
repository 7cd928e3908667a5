package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/parliament/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify parliament configuration",
	Long: `View or modify parliament configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  parliament config set chamber.vote_threshold 20
  parliament config set debate.thinking_delay 250ms
  parliament config set random.seed 42

Run 'parliament config show' to list every key.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Create a config file in the config directory with every option set to its default.

Use --format toml to write config.toml instead of config.yaml.`,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var (
	configInitFormat string
	configInitForce  bool
)

func init() {
	configInitCmd.Flags().StringVarP(&configInitFormat, "format", "f", "yaml", "File format: yaml or toml")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "Config file: %s\n\n", used)
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n\n")
	}

	settings := cfg.Settings()
	section := ""
	for _, key := range config.Keys() {
		sec, name, _ := strings.Cut(key, ".")
		if sec != section {
			fmt.Fprintf(out, "%s:\n", sec)
			section = sec
		}
		fmt.Fprintf(out, "  %s: %v\n", name, settings[key])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	if !config.IsKnownKey(key) {
		return fmt.Errorf("unknown configuration key: %s\nValid keys: %s", key, strings.Join(config.Keys(), ", "))
	}

	value, err := convertSetting(key, raw)
	if err != nil {
		return err
	}

	viper.Set(key, value)
	if _, err := config.Load(); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = config.ConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, value)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

// convertSetting parses raw into the type of key's default value.
func convertSetting(key, raw string) (any, error) {
	var (
		value any
		err   error
	)
	switch def := config.Default().Settings()[key].(type) {
	case int:
		value, err = cast.ToIntE(raw)
	case int64:
		value, err = cast.ToInt64E(raw)
	case bool:
		value, err = cast.ToBoolE(raw)
	case string:
		value = raw
		// Durations are stored as strings but must parse
		if _, isDuration := durationKeys[key]; isDuration {
			var d time.Duration
			d, err = cast.ToDurationE(raw)
			value = d.String()
		}
	default:
		return nil, fmt.Errorf("unsupported setting type %T for %s", def, key)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return value, nil
}

var durationKeys = map[string]struct{}{
	"debate.thinking_delay": {},
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	nested := config.Default().Nested()
	switch configInitFormat {
	case "yaml", "yml":
		data, err = yaml.Marshal(nested)
	case "toml":
		data, err = toml.Marshal(nested)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or toml", configInitFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	ext := configInitFormat
	if ext == "yml" {
		ext = "yaml"
	}
	configFile := filepath.Join(config.ConfigDir(), "config."+ext)

	if _, err := os.Stat(configFile); err == nil && !configInitForce {
		return fmt.Errorf("config file already exists at %s\nUse 'parliament config set' to modify values or --force to overwrite", configFile)
	}
	if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	header := "# parliament configuration\n# Run 'parliament config show' to see the effective values.\n\n"
	if err := os.WriteFile(configFile, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "Active config: %s\n", used)
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.{yaml,toml}"))
	fmt.Fprintf(out, "  2. $HOME/.config/parliament/config.{yaml,toml}\n")
	fmt.Fprintf(out, "  3. ./config.{yaml,toml} (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: PARLIAMENT_* (e.g., PARLIAMENT_CHAMBER_VOTE_THRESHOLD)")
	return nil
}
