package app

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/config"
	"github.com/blackwell-systems/gamectl/internal/library"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell autocompletion scripts",
		Long: `Generate autocompletion scripts for your shell.

Examples:
  # Bash (add to ~/.bashrc)
  source <(gamectl completion bash)

  # Zsh (add to ~/.zshrc)
  source <(gamectl completion zsh)

  # Fish
  gamectl completion fish > ~/.config/fish/completions/gamectl.fish

  # PowerShell
  gamectl completion powershell | Out-String | Invoke-Expression`,
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			default:
				return cmd.Help()
			}
		},
	}

	return cmd
}

// completeGames offers played-game titles for the first argument. It opens
// the library on its own because PersistentPreRunE does not run during
// completion.
func completeGames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	c, err := config.Load(flagConfig)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	l, _ := library.Open(library.Options{GamesPath: c.GamesPath(), WishlistPath: c.WishlistPath()})

	prefix := strings.ToLower(toComplete)
	var out []string
	for _, g := range l.Games() {
		if strings.HasPrefix(strings.ToLower(g.Title), prefix) {
			out = append(out, g.Title+"\t"+string(g.Status))
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
