package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "A Pomodoro timer for the terminal",
	Long: `pomo is a Pomodoro timer for the terminal.

It counts down a 25 minute work phase, then a 5 minute break, and so on.
The timer stops at the end of every phase; start the next one when you
are ready.

Keys:
  space, p        Start or pause
  r               Reset the current phase
  ←/→, enter      Focus and press the on-screen buttons
  tab, 1-2        Switch between the Timer and Config views
  ?               Show all shortcuts
  q               Quit

Examples:
  pomo                       Start the timer
  pomo --inline              Draw in the normal screen buffer
  pomo --theme nord          Use a different theme for this session
  pomo --log-level debug     Write a debug log (see 'pomo config')`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(readTUIFlags(cmd))
	},
}

func init() {
	rootCmd.Flags().Bool("inline", false, "Render in the normal screen buffer instead of the alternate screen")
	rootCmd.Flags().String("theme", "", "Theme for this session (overrides the config file)")
	rootCmd.Flags().String("log-level", "", "Log level for this session: off, debug, info, warn, error")

	_ = rootCmd.RegisterFlagCompletionFunc("theme", completeThemes)
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", completeLogLevels)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"pomo version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
