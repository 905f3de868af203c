package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/colorspace/internal/color"
	"github.com/balkashynov/colorspace/internal/tui"
)

var applyCmd = &cobra.Command{
	Use:   "apply <preset|hex>",
	Short: "Apply a preset or hex colour to the workspace",
	Long: `Apply a colour by preset name (English, Chinese or slug, see 'colorspace presets')
or by hex value (#rgb or #rrggbb). Applying a colour re-enables auto colouring
for a workspace that was cleared by hand.`,
	Example: `  colorspace apply haze-blue
  colorspace apply "Sage Green"
  colorspace apply "#1b4d80"`,
	Args: cobra.MinimumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, app *appContext, args []string) error {
		hex, err := resolveColor(strings.Join(args, " "))
		if err != nil {
			return err
		}
		p, err := app.manager.ApplyColor(cmd.Context(), app.workspace, hex)
		if err != nil {
			return err
		}
		printApplied(cmd.OutOrStdout(), app.workspace, p)
		return nil
	}),
}

// resolveColor accepts a preset name or a hex value
func resolveColor(arg string) (string, error) {
	if preset, ok := color.FindPreset(arg); ok {
		return preset.Hex, nil
	}
	hex, err := color.Canonicalize(arg)
	if err != nil {
		return "", fmt.Errorf("%w; not a preset name either, see 'colorspace presets'", err)
	}
	return hex, nil
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Apply a random preset to the workspace",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, app *appContext, args []string) error {
		p, err := app.manager.ApplyColor(cmd.Context(), app.workspace, app.manager.RandomColor())
		if err != nil {
			return err
		}
		printApplied(cmd.OutOrStdout(), app.workspace, p)
		return nil
	}),
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a colour interactively",
	Long:  `Browse presets, tune a colour on HSV sliders or type a hex value, then apply it.`,
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, app *appContext, args []string) error {
		st, err := app.manager.Status(cmd.Context(), app.workspace)
		if err != nil {
			return err
		}
		initial := st.Colors[color.KeyTitleBackground]
		if initial == "" {
			initial = st.AutoColor
		}

		hex, ok, err := tui.RunPicker(app.workspace.Name, initial, app.language())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "❌ No colour applied.")
			return nil
		}

		p, err := app.manager.ApplyColor(cmd.Context(), app.workspace, hex)
		if err != nil {
			return err
		}
		printApplied(cmd.OutOrStdout(), app.workspace, p)
		return nil
	}),
}
