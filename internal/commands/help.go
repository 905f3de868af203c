package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for colorspace",
	Long:  `Display detailed help for all colorspace commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp(cmd.OutOrStdout())
	},
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
colorspace - a stable accent colour for every workspace

COMMANDS:

  auto                    Colour the workspace from its name (run on open)
    -q, --quiet           Print nothing when skipped

  apply <preset|hex>      Apply a preset or hex colour
    Example:
      colorspace apply haze-blue
      colorspace apply "#1b4d80"

  random                  Apply a random preset
  pick                    Choose a colour interactively

    Picker keys:
      tab           Switch between presets, HSV sliders and hex entry
      ↑/↓           Move selection / choose channel
      ←/→           Change category / adjust channel
      r             Random colour
      enter         Apply
      esc/q         Cancel

  clear                   Remove the colours and stop auto colouring
  reset                   Forget a manual clear and colour again

  enable                  Turn colorspace on
  disable                 Turn colorspace off and remove the colours

  ignore [name]           Never auto colour a workspace
  unignore [name]         Remove a workspace from the ignore list

  status                  Show the workspace colour state
    --all                 Also list every known workspace

  presets                 List the built-in presets
    --category            light | dark | classic
    --theme               dark | light
    --lang                en | zh

  watch                   Follow config edits and update colours
  version                 Print version information
  help                    Show this help

GLOBAL FLAGS:

  -w, --workspace         Workspace directory (default: current directory)
  --config                Config file (default: ~/.config/colorspace/config.toml)
  --debug                 Write a debug log to ~/.colorspace/debug.log

`)
}
