package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ignoreCmd = &cobra.Command{
	Use:   "ignore [name]",
	Short: "Never auto colour a workspace (default: this one)",
	Long: `Add a workspace name to the ignore list. Matching is exact and case-sensitive.
Existing colours are kept; run 'colorspace clear' to remove them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, app *appContext, args []string) error {
		name, err := nameArg(app, args)
		if err != nil {
			return err
		}
		if err := app.source.Ignore(name); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Ignoring %s\n", name)
		return nil
	}),
}

var unignoreCmd = &cobra.Command{
	Use:   "unignore [name]",
	Short: "Remove a workspace from the ignore list",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, app *appContext, args []string) error {
		name, err := nameArg(app, args)
		if err != nil {
			return err
		}
		if err := app.source.Unignore(name); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "No longer ignoring %s\n", name)
		return nil
	}),
}

func nameArg(app *appContext, args []string) (string, error) {
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}
	if app.workspace.Name == "" {
		return "", fmt.Errorf("no workspace name; pass one explicitly")
	}
	return app.workspace.Name, nil
}
