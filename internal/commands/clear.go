package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the workspace colours and stop auto colouring it",
	Long: `Remove the title, activity and status bar colours from the workspace settings.
Other settings are left untouched. The workspace is remembered as cleared, so
'colorspace auto' leaves it alone until a colour is applied again or it is reset.`,
	Args: cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, app *appContext, args []string) error {
		if err := app.manager.ClearColor(cmd.Context(), app.workspace); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🧹 Cleared colours for %s\n", app.workspace.Name)
		return nil
	}),
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget a manual clear and auto colour the workspace again",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, app *appContext, args []string) error {
		if err := app.flags.Forget(cmd.Context(), app.workspace.Key); err != nil {
			return err
		}
		out, err := app.manager.AutoApply(cmd.Context(), app.workspace)
		if err != nil {
			return err
		}
		printOutcome(cmd.OutOrStdout(), app.workspace, out)
		return nil
	}),
}
