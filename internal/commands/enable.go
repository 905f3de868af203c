package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn colorspace on and colour the workspace",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, app *appContext, args []string) error {
		out, err := app.manager.Enable(cmd.Context(), app.workspace)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "colorspace enabled")
		printOutcome(cmd.OutOrStdout(), app.workspace, out)
		return nil
	}),
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn colorspace off and remove the workspace colours",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, app *appContext, args []string) error {
		if err := app.manager.Disable(cmd.Context(), app.workspace); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "colorspace disabled, colours removed from %s\n", app.workspace.Name)
		return nil
	}),
}
