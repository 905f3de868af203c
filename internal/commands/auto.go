package commands

import (
	"github.com/spf13/cobra"
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Colour the workspace from its name unless it already has colours",
	Long: `Run this when a workspace is opened. The colour is derived from the
workspace name and the terminal theme. Nothing is written when colorspace is
disabled, the workspace is ignored or was cleared by hand, or the workspace
already has title, activity or status bar colours.`,
	Args: cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, app *appContext, args []string) error {
		out, err := app.manager.AutoApply(cmd.Context(), app.workspace)
		if err != nil {
			return err
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		if quiet && !out.Applied {
			return nil
		}
		printOutcome(cmd.OutOrStdout(), app.workspace, out)
		return nil
	}),
}

func init() {
	autoCmd.Flags().BoolP("quiet", "q", false, "print nothing when the workspace is skipped")
}

