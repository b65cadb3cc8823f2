package cmd

import (
	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for pomo.

Completion covers subcommands and flags, including the theme names
accepted by --theme.

Bash:
  source <(pomo completion bash)
  pomo completion bash > ~/.local/share/bash-completion/completions/pomo

Zsh:
  pomo completion zsh > "${fpath[1]}/_pomo"

Fish:
  pomo completion fish > ~/.config/fish/completions/pomo.fish

PowerShell:
  pomo completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion writes the completion script for shell to stdout
func generateCompletion(shell string) {
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(deps.Stdout, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		fail("Unsupported shell '"+shell+"'", nil,
			"Supported shells: bash, zsh, fish, powershell")
		return
	}

	if err != nil {
		fail("Failed to generate "+shell+" completion", err)
		return
	}
}
