package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/parliament/internal/proposal"
	"github.com/Iron-Ham/parliament/internal/roster"
)

// setupTestEnvironment points config and home at a temp dir so no user
// configuration leaks into the test.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PARLIAMENT_LOGGING_ENABLED", "false")
	return dir
}

// executeCommand runs the root command with args and returns captured output
func executeCommand(args ...string) (string, error) {
	viper.Reset()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so values do not carry
// over between executions of the shared command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "parliament" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "parliament")
	}

	expectedCmds := []string{"groups", "politicians", "proposals", "simulate", "start", "config", "version"}
	cmdMap := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		cmdMap[c.Name()] = true
	}
	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestGroupsCommand(t *testing.T) {
	setupTestEnvironment(t)

	output, err := executeCommand("groups")
	if err != nil {
		t.Fatalf("groups failed: %v\n%s", err, output)
	}
	for _, want := range []string{"ORIENTATION", "conservatives", "radicals", "Total seats:"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestGroupsCommand_JSON(t *testing.T) {
	setupTestEnvironment(t)

	output, err := executeCommand("groups", "--json")
	if err != nil {
		t.Fatalf("groups --json failed: %v", err)
	}

	var groups []roster.Group
	if err := json.Unmarshal([]byte(output), &groups); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if len(groups) != 5 {
		t.Errorf("got %d groups, want 5", len(groups))
	}
	if !strings.Contains(output, `"seatsCount"`) {
		t.Errorf("JSON missing seatsCount field:\n%s", output)
	}
}

func TestPoliticiansCommand(t *testing.T) {
	setupTestEnvironment(t)

	t.Run("all", func(t *testing.T) {
		output, err := executeCommand("politicians")
		if err != nil {
			t.Fatalf("politicians failed: %v", err)
		}
		if !strings.Contains(output, "Victoria Montgomery") || !strings.Contains(output, "Oliver Greenwood") {
			t.Errorf("expected members of several groups:\n%s", output)
		}
	})

	t.Run("by group", func(t *testing.T) {
		output, err := executeCommand("politicians", "--group", "greens")
		if err != nil {
			t.Fatalf("politicians --group failed: %v", err)
		}
		if !strings.Contains(output, "Oliver Greenwood") {
			t.Errorf("expected a green member:\n%s", output)
		}
		if strings.Contains(output, "Victoria Montgomery") {
			t.Errorf("unexpected conservative member:\n%s", output)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		if _, err := executeCommand("politicians", "--group", "whigs"); err == nil {
			t.Error("expected error for unknown group")
		}
	})
}

func TestProposalsCommand(t *testing.T) {
	setupTestEnvironment(t)

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
		wantErr bool
	}{
		{
			name: "all",
			args: []string{"proposals"},
			want: []string{"law1", "law2", "law3", "law4", "law5"},
		},
		{
			name:    "tag glob",
			args:    []string{"proposals", "--tag", "env*"},
			want:    []string{"law3"},
			notWant: []string{"law1", "law2"},
		},
		{
			name:    "tag alternatives",
			args:    []string{"proposals", "--tag", "{taxation,voting}"},
			want:    []string{"law2", "law4"},
			notWant: []string{"law1", "law3"},
		},
		{
			name:    "status",
			args:    []string{"proposals", "--status", "debating"},
			want:    []string{"law1"},
			notWant: []string{"law2"},
		},
		{
			name: "no match",
			args: []string{"proposals", "--status", "passed"},
			want: []string{"No matching proposals"},
		},
		{
			name:    "bad status",
			args:    []string{"proposals", "--status", "tabled"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCommand(tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, w := range tt.want {
				if !strings.Contains(output, w) {
					t.Errorf("output missing %q:\n%s", w, output)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(output, nw) {
					t.Errorf("output unexpectedly contains %q:\n%s", nw, output)
				}
			}
		})
	}
}

func TestProposalsCommand_JSON(t *testing.T) {
	setupTestEnvironment(t)

	output, err := executeCommand("proposals", "--json", "--tag", "economy")
	if err != nil {
		t.Fatalf("proposals --json failed: %v", err)
	}

	var proposals []proposal.Proposal
	if err := json.Unmarshal([]byte(output), &proposals); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if len(proposals) != 3 {
		t.Errorf("got %d proposals tagged economy, want 3", len(proposals))
	}
}

func TestSimulateCommand(t *testing.T) {
	setupTestEnvironment(t)

	output, err := executeCommand("simulate", "--seed", "42", "--statements", "4", "--voters", "300")
	if err != nil {
		t.Fatalf("simulate failed: %v\n%s", err, output)
	}
	for _, want := range []string{"law1:", "Votes: for", "Outcome:", "Seed: 42"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Outcome: debating") {
		t.Errorf("300 voters should resolve the proposal:\n%s", output)
	}
}

func TestSimulateCommand_Reproducible(t *testing.T) {
	setupTestEnvironment(t)

	outcome := func() string {
		output, err := executeCommand("simulate", "--seed", "7", "--statements", "0", "--voters", "300")
		if err != nil {
			t.Fatalf("simulate failed: %v", err)
		}
		var lines []string
		for _, line := range strings.Split(output, "\n") {
			if strings.HasPrefix(line, "Votes:") || strings.HasPrefix(line, "Outcome:") {
				lines = append(lines, line)
			}
		}
		return strings.Join(lines, "\n")
	}

	first, second := outcome(), outcome()
	if first == "" || first != second {
		t.Errorf("same seed gave different outcomes:\n%s\n---\n%s", first, second)
	}
}

func TestSimulateCommand_Runs(t *testing.T) {
	setupTestEnvironment(t)

	output, err := executeCommand("simulate", "--runs", "3", "--seed", "1", "--proposal", "law2", "--statements", "2", "--metrics")
	if err != nil {
		t.Fatalf("simulate --runs failed: %v\n%s", err, output)
	}
	for _, want := range []string{"Simulated 3 runs of law2", "Average tally", "parliament_debates_opened_total 3", "parliament_statements_total"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestSimulateCommand_Errors(t *testing.T) {
	setupTestEnvironment(t)

	tests := []struct {
		name string
		args []string
	}{
		{"zero runs", []string{"simulate", "--runs", "0"}},
		{"unknown proposal", []string{"simulate", "--proposal", "law99"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := executeCommand(tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigInitAndSet(t *testing.T) {
	dir := setupTestEnvironment(t)
	configFile := filepath.Join(dir, "parliament", "config.yaml")

	if _, err := executeCommand("config", "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	data, err := os.ReadFile(configFile)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "vote_threshold: 50") {
		t.Errorf("config file missing defaults:\n%s", data)
	}

	if _, err := executeCommand("config", "init"); err == nil {
		t.Error("second config init should fail without --force")
	}

	output, err := executeCommand("config", "set", "chamber.vote_threshold", "20")
	if err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if !strings.Contains(output, "Set chamber.vote_threshold = 20") {
		t.Errorf("unexpected set output:\n%s", output)
	}

	output, err = executeCommand("config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(output, "vote_threshold: 20") {
		t.Errorf("config show does not reflect set value:\n%s", output)
	}
	if !strings.Contains(output, configFile) {
		t.Errorf("config show should name %s:\n%s", configFile, output)
	}
}

func TestConfigInit_TOML(t *testing.T) {
	dir := setupTestEnvironment(t)

	if _, err := executeCommand("config", "init", "--format", "toml"); err != nil {
		t.Fatalf("config init --format toml failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "parliament", "config.toml"))
	if err != nil {
		t.Fatalf("toml file not written: %v", err)
	}
	for _, want := range []string{"[chamber]", "vote_threshold = 50", "thinking_delay = "} {
		if !strings.Contains(string(data), want) {
			t.Errorf("toml missing %q:\n%s", want, data)
		}
	}

	if _, err := executeCommand("config", "init", "--format", "ini"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestConfigSet_Errors(t *testing.T) {
	setupTestEnvironment(t)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "chamber.quorum", "10"},
		{"not an integer", "chamber.vote_threshold", "many"},
		{"fails validation", "chamber.vote_threshold", "0"},
		{"bad duration", "debate.thinking_delay", "soon"},
		{"bad bool", "logging.enabled", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := executeCommand("config", "set", tt.key, tt.value); err == nil {
				t.Errorf("config set %s %s: expected error", tt.key, tt.value)
			}
		})
	}
}

func TestConvertSetting(t *testing.T) {
	tests := []struct {
		key  string
		raw  string
		want any
	}{
		{"chamber.vote_threshold", "20", 20},
		{"random.seed", "42", int64(42)},
		{"tui.show_help", "true", true},
		{"debate.thinking_delay", "1500ms", "1.5s"},
		{"logging.level", "debug", "debug"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := convertSetting(tt.key, tt.raw)
			if err != nil {
				t.Fatalf("convertSetting() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("convertSetting() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	setupTestEnvironment(t)

	output, err := executeCommand("config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if !strings.Contains(output, "PARLIAMENT_") {
		t.Errorf("config path should mention env prefix:\n%s", output)
	}
}

func TestEnvOverride(t *testing.T) {
	setupTestEnvironment(t)
	t.Setenv("PARLIAMENT_CHAMBER_VOTE_THRESHOLD", "7")

	output, err := executeCommand("config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(output, "vote_threshold: 7") {
		t.Errorf("env override not applied:\n%s", output)
	}
}

func TestVersionCommand(t *testing.T) {
	setupTestEnvironment(t)

	output, err := executeCommand("version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(output, "parliament "+Version) {
		t.Errorf("unexpected version output: %q", output)
	}
}

func TestStartCommand_RequiresTerminal(t *testing.T) {
	setupTestEnvironment(t)

	_, err := executeCommand("start")
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Errorf("start without a terminal: error = %v, want terminal error", err)
	}
}

func TestProposalFilter(t *testing.T) {
	p := proposal.Proposal{ID: "law9", Status: proposal.StatusPending, Tags: []string{"environment", "energy"}}

	tests := []struct {
		tag, status string
		want        bool
	}{
		{"", "", true},
		{"energy", "", true},
		{"env*", "pending", true},
		{"econ*", "", false},
		{"", "debating", false},
	}
	for _, tt := range tests {
		f, err := newProposalFilter(tt.tag, tt.status)
		if err != nil {
			t.Fatalf("newProposalFilter(%q, %q) error = %v", tt.tag, tt.status, err)
		}
		if got := f.match(p); got != tt.want {
			t.Errorf("filter(%q, %q).match() = %v, want %v", tt.tag, tt.status, got, tt.want)
		}
	}
}
