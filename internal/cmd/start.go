package cmd

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Iron-Ham/parliament/internal/config"
	"github.com/Iron-Ham/parliament/internal/logging"
	"github.com/Iron-Ham/parliament/internal/parliament"
	"github.com/Iron-Ham/parliament/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the interactive chamber",
	Long: `Open the interactive chamber.
This launches the TUI where you can put proposals up for debate, listen to
the floor, cast votes and submit new proposals.

Changes to debate.thinking_delay in the config file apply while running.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("parliament start needs an interactive terminal; use 'parliament simulate' for scripted sessions")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Always a file logger here: stderr output would corrupt the screen
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	chamber, err := openChamber(cfg, parliament.NewRand(cfg.Random.Seed), logger)
	if err != nil {
		return err
	}

	app := tui.New(chamber, tui.Options{
		ThinkingDelay:   cfg.Debate.ThinkingDelay,
		TranscriptLines: cfg.TUI.TranscriptLines,
		ShowHelp:        cfg.TUI.ShowHelp,
		Logger:          logger,
	})
	watchConfig(app, logger)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// watchConfig applies config file edits to the running app.
func watchConfig(app *tui.App, logger *logging.Logger) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := config.Load()
		if err != nil {
			logger.Warn("ignoring invalid config change", "file", e.Name, "error", err)
			return
		}
		logger.Info("config reloaded", "file", e.Name, "thinking_delay", cfg.Debate.ThinkingDelay.String())
		app.SetThinkingDelay(cfg.Debate.ThinkingDelay)
	})
	viper.WatchConfig()
}
