package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/pomo/internal/config"
	"github.com/xolan/pomo/internal/service"
	"github.com/xolan/pomo/internal/tui"
	"github.com/xolan/pomo/internal/tui/ui"
)

// tuiFlags holds the session overrides given on the command line
// and the version of the running binary.
type tuiFlags struct {
	inline   bool
	theme    string
	logLevel string
	version  string
}

func readTUIFlags(cmd *cobra.Command) tuiFlags {
	inline, _ := cmd.Flags().GetBool("inline")
	theme, _ := cmd.Flags().GetString("theme")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return tuiFlags{
		inline:   inline,
		theme:    theme,
		logLevel: logLevel,
		version:  cmd.Root().Version,
	}
}

// apply overlays the flags on cfg. Empty values leave the config alone.
func (f tuiFlags) apply(cfg *config.Config) {
	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.inline {
		cfg.AltScreen = false
	}
	cfg.Normalize()
}

// runTUI loads the configuration, opens the log and runs the TUI
func runTUI(flags tuiFlags) {
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

	flags.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		fail("Invalid option", err, configHint(err))
		return
	}

	logger, err := service.OpenLog(cfg)
	if err != nil {
		fail("Failed to open log file", err,
			"Set log_file to a writable location or use --log-level off")
		return
	}

	services := service.NewServicesWithPaths(configPath, cfg, logger)
	services.Log.Info("starting", "version", flags.version, "config", configPath, "theme", cfg.Theme)

	err = deps.RunTUI(services, tui.Options{AltScreen: cfg.AltScreen})
	if err != nil {
		services.Log.Error("tui exited with error", "error", err)
	}
	_ = services.Close()

	if err != nil {
		fail("Failed to run the terminal UI", err)
		return
	}
}

// completeThemes completes --theme with the known theme IDs
func completeThemes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return ui.NewThemeProvider("").AvailableThemes(), cobra.ShellCompDirectiveNoFileComp
}

// completeLogLevels completes --log-level
func completeLogLevels(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return config.ValidLogLevels, cobra.ShellCompDirectiveNoFileComp
}
