package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/pomo/internal/config"
	"github.com/xolan/pomo/internal/logging"
	"github.com/xolan/pomo/internal/pomodoro"
	"github.com/xolan/pomo/internal/service"
	"github.com/xolan/pomo/internal/tui/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for pomo.

Shows the configuration file location, whether it exists, and all current settings.
pomo works without any configuration file. All settings have defaults:
  - theme: dracula
  - log_level: off
  - log_file: pomo.log next to the config file
  - alt_screen: true
  - ring_radius: 6

Work (25:00) and break (05:00) durations are fixed.

Configuration file location:
  ~/.config/pomo/config.toml         Linux
  ~/Library/Application Support/pomo/config.toml   macOS
  %APPDATA%\pomo\config.toml         Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Long: `Create a config file documenting every setting, all commented out.

If a config file already exists you are asked before it is overwritten,
unless --force is given.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		initConfig(force)
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := deps.ConfigPath()
		if err != nil {
			fail("Failed to determine config file location", err,
				"Check that your home directory is accessible")
			return
		}
		_, _ = fmt.Fprintln(deps.Stdout, configPath)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file without asking")
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		fail("Failed to determine config file location", err,
			"Check that your home directory is accessible")
		return
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		fail("Failed to load configuration", err,
			configHint(err),
			"Config file: "+configPath)
		return
	}

	svc := service.NewConfigService(configPath, cfg)

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for pomo")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if svc.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))

	themes := ui.NewThemeProvider(cfg.Theme)
	if cfg.Theme == "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Theme:           %s (default)\n", themes.CurrentName())
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Theme:           %s (%s)\n", cfg.Theme, themes.CurrentDisplayName())
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Log Level:       %s\n", cfg.LogLevel)
	if _, enabled := logging.ParseLevel(cfg.LogLevel); enabled {
		logPath, err := config.GetLogPath(cfg)
		if err != nil {
			logPath = fmt.Sprintf("(unavailable: %v)", err)
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Log File:        %s\n", logPath)
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Log File:        (logging disabled)")
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Alt Screen:      %t\n", cfg.AltScreen)
	_, _ = fmt.Fprintf(deps.Stdout, "Ring Radius:     %d\n", cfg.RingRadius)
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Phases (fixed):")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Work:            %s\n", pomodoro.FormatClock(pomodoro.WorkDuration))
	_, _ = fmt.Fprintf(deps.Stdout, "Break:           %s\n", pomodoro.FormatClock(pomodoro.BreakDuration))
	_, _ = fmt.Fprintln(deps.Stdout)

	if !svc.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'pomo config init' to create a config file with every setting documented.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// initConfig writes the sample config file, asking before overwriting
func initConfig(force bool) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		fail("Failed to determine config file location", err,
			"Check that your home directory is accessible")
		return
	}

	svc := service.NewConfigService(configPath, config.DefaultConfig())

	if svc.Exists() {
		if !force && !confirm(fmt.Sprintf("Config file already exists at %s. Overwrite? [y/N]: ", configPath)) {
			_, _ = fmt.Fprintln(deps.Stdout, "Aborted, config file left unchanged.")
			return
		}
		if err := os.Remove(configPath); err != nil {
			fail("Failed to replace existing config file", err,
				"Check that the file is writable: "+configPath)
			return
		}
	}

	if err := svc.Init(); err != nil {
		fail("Failed to create config file", err,
			"Check that the directory is writable: "+configPath)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", configPath)
}

// confirm prompts on stdout and reads a yes/no answer from stdin
func confirm(prompt string) bool {
	_, _ = fmt.Fprint(deps.Stdout, prompt)

	reader := bufio.NewReader(deps.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		_, _ = fmt.Fprintln(deps.Stdout)
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
