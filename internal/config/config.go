package config

import (
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config represents the complete parliament configuration
type Config struct {
	Chamber  ChamberConfig  `mapstructure:"chamber"`
	Debate   DebateConfig   `mapstructure:"debate"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Random   RandomConfig   `mapstructure:"random"`
	Simulate SimulateConfig `mapstructure:"simulate"`
	TUI      TUIConfig      `mapstructure:"tui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ChamberConfig controls how votes resolve proposals
type ChamberConfig struct {
	// VoteThreshold is the number of for+against votes at which a proposal
	// resolves (default: 50). Abstentions never count toward it.
	VoteThreshold int `mapstructure:"vote_threshold"`
}

// DebateConfig controls statement generation
type DebateConfig struct {
	// RecentSpeakerWindow is how many of the latest statements exclude their
	// speakers from being picked again (default: 3)
	RecentSpeakerWindow int `mapstructure:"recent_speaker_window"`
	// ThinkingDelay is how long the TUI waits before revealing a generated
	// statement (default: 1s)
	ThinkingDelay time.Duration `mapstructure:"thinking_delay"`
}

// SeedConfig selects the reference data loaded at startup
type SeedConfig struct {
	// Path is a YAML seed file or a directory of YAML files.
	// Empty uses the built-in chamber.
	Path string `mapstructure:"path"`
}

// RandomConfig controls the randomness source
type RandomConfig struct {
	// Seed fixes the random sequence. 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

// SimulateConfig holds defaults for the simulate command
type SimulateConfig struct {
	Statements  int `mapstructure:"statements"`
	Voters      int `mapstructure:"voters"`
	Parallelism int `mapstructure:"parallelism"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// TranscriptLines limits how many transcript lines are kept in the viewport
	TranscriptLines int `mapstructure:"transcript_lines"`
	// ShowHelp shows the full key help on startup
	ShowHelp bool `mapstructure:"show_help"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled turns logging on (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level: debug, info, warn, error (default: info)
	Level string `mapstructure:"level"`
	// Dir is where parliament.log is written. Empty uses the config directory.
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Chamber: ChamberConfig{
			VoteThreshold: 50,
		},
		Debate: DebateConfig{
			RecentSpeakerWindow: 3,
			ThinkingDelay:       time.Second,
		},
		Seed:   SeedConfig{Path: ""},
		Random: RandomConfig{Seed: 0},
		Simulate: SimulateConfig{
			Statements:  5,
			Voters:      100,
			Parallelism: 4,
		},
		TUI: TUIConfig{
			TranscriptLines: 200,
			ShowHelp:        false,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// SetDefaults registers default values with the global viper instance
func SetDefaults() {
	SetDefaultsOn(viper.GetViper())
}

// SetDefaultsOn registers default values with v
func SetDefaultsOn(v *viper.Viper) {
	for key, value := range Default().Settings() {
		v.SetDefault(key, value)
	}
}

// Settings flattens the configuration into dot-separated keys. Durations are
// rendered as strings so the map can be written back to a config file.
func (c *Config) Settings() map[string]any {
	return map[string]any{
		"chamber.vote_threshold":       c.Chamber.VoteThreshold,
		"debate.recent_speaker_window": c.Debate.RecentSpeakerWindow,
		"debate.thinking_delay":        c.Debate.ThinkingDelay.String(),
		"seed.path":                    c.Seed.Path,
		"random.seed":                  c.Random.Seed,
		"simulate.statements":          c.Simulate.Statements,
		"simulate.voters":              c.Simulate.Voters,
		"simulate.parallelism":         c.Simulate.Parallelism,
		"tui.transcript_lines":         c.TUI.TranscriptLines,
		"tui.show_help":                c.TUI.ShowHelp,
		"logging.enabled":              c.Logging.Enabled,
		"logging.level":                c.Logging.Level,
		"logging.dir":                  c.Logging.Dir,
	}
}

// Nested returns the settings as nested maps keyed by section, suitable for
// yaml or toml encoding.
func (c *Config) Nested() map[string]map[string]any {
	out := make(map[string]map[string]any)
	for key, value := range c.Settings() {
		section, name := splitKey(key)
		if out[section] == nil {
			out[section] = make(map[string]any)
		}
		out[section][name] = value
	}
	return out
}

// Keys returns every known configuration key in sorted order
func Keys() []string {
	settings := Default().Settings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// IsKnownKey reports whether key is a configuration key
func IsKnownKey(key string) bool {
	_, ok := Default().Settings()[key]
	return ok
}

// Load reads the configuration from the global viper instance and validates it
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads the configuration from v and validates it
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when the
// configuration cannot be loaded
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "parliament")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".parliament"
	}
	return filepath.Join(home, ".config", "parliament")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogDir returns the directory logs are written to
func (c *Config) LogDir() string {
	if c.Logging.Dir != "" {
		return c.Logging.Dir
	}
	return ConfigDir()
}

func splitKey(key string) (string, string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}
