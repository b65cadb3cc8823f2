package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/pomo/internal/config"
)

func TestShowConfig_NoConfigFile(t *testing.T) {
	env := testDeps(t, filepath.Join(t.TempDir(), "config.toml"), "")

	showConfig()

	if env.exited {
		t.Fatalf("unexpected exit: %s", env.stderr.String())
	}

	output := env.stdout.String()
	for _, want := range []string{
		"No config file",
		"dracula (default)",
		"Log Level:       off",
		"(logging disabled)",
		"Ring Radius:     6",
		"Work:            25:00",
		"Break:           05:00",
		"Tip:",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestShowConfig_WithConfigFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pomo.log")
	configPath := writeConfig(t, fmt.Sprintf("theme = \"nord\"\nlog_level = \"debug\"\nlog_file = %q\n", logPath))
	env := testDeps(t, configPath, "")

	showConfig()

	output := env.stdout.String()
	for _, want := range []string{"File exists", "Theme:           nord", "Log Level:       debug", logPath} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
	if strings.Contains(output, "Tip:") {
		t.Error("tip should only show without a config file")
	}
}

func TestShowConfig_InvalidConfig(t *testing.T) {
	env := testDeps(t, writeConfig(t, "log_level = \"chatty\"\n"), "")

	showConfig()

	if env.exitCode != 1 {
		t.Errorf("expected exit 1, got %d", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Valid log levels") {
		t.Errorf("expected log level hint, got %q", env.stderr.String())
	}
}

func TestInitConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	env := testDeps(t, configPath, "")

	initConfig(false)

	if env.exited {
		t.Fatalf("unexpected exit: %s", env.stderr.String())
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("expected config file: %v", err)
	}
	if string(data) != config.GenerateSampleConfig() {
		t.Error("expected the sample config")
	}
	if !strings.Contains(env.stdout.String(), "Created config file") {
		t.Errorf("unexpected output %q", env.stdout.String())
	}

	// the sample must load cleanly
	if _, err := config.Load(configPath); err != nil {
		t.Errorf("sample config does not load: %v", err)
	}
}

func TestInitConfig_Existing(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		force       bool
		overwritten bool
	}{
		{"declined", "n\n", false, false},
		{"empty answer", "", false, false},
		{"accepted", "y\n", false, true},
		{"accepted yes", "YES\n", false, true},
		{"forced", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeConfig(t, "theme = \"nord\"\n")
			env := testDeps(t, configPath, tt.stdin)

			initConfig(tt.force)

			if env.exited {
				t.Fatalf("unexpected exit: %s", env.stderr.String())
			}
			data, err := os.ReadFile(configPath)
			if err != nil {
				t.Fatal(err)
			}
			overwritten := string(data) == config.GenerateSampleConfig()
			if overwritten != tt.overwritten {
				t.Errorf("overwritten = %v, expected %v", overwritten, tt.overwritten)
			}
			if !tt.force && !strings.Contains(env.stdout.String(), "Overwrite?") {
				t.Error("expected a confirmation prompt")
			}
			if !tt.overwritten && !strings.Contains(env.stdout.String(), "Aborted") {
				t.Error("expected an abort message")
			}
		})
	}
}

func TestConfigPathCmd(t *testing.T) {
	env := testDeps(t, "/some/where/config.toml", "")

	configPathCmd.Run(configPathCmd, nil)

	if strings.TrimSpace(env.stdout.String()) != "/some/where/config.toml" {
		t.Errorf("unexpected output %q", env.stdout.String())
	}
}
