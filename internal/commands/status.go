package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/balkashynov/colorspace/internal/color"
	"github.com/balkashynov/colorspace/internal/palette"
	"github.com/balkashynov/colorspace/internal/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how the workspace is coloured",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, app *appContext, args []string) error {
		w := cmd.OutOrStdout()
		st, err := app.manager.Status(cmd.Context(), app.workspace)
		if err != nil {
			return err
		}
		printStatus(w, st, app)

		all, _ := cmd.Flags().GetBool("all")
		if !all {
			return nil
		}
		states, err := app.flags.ListWorkspaces(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Known workspaces:")
		for _, s := range states {
			mark := " "
			if s.ManuallyCleared {
				mark = "✗"
			}
			fmt.Fprintf(w, "  %s %-24s %s\n", mark, s.Name, mutedStyle.Render(s.Key))
		}
		return nil
	}),
}

func init() {
	statusCmd.Flags().Bool("all", false, "also list every workspace colorspace has seen")
}

func printStatus(w io.Writer, st palette.Status, app *appContext) {
	name := st.Workspace.Name
	if name == "" {
		name = "(no workspace)"
	}
	fmt.Fprintf(w, "Workspace: %s\n", name)
	fmt.Fprintf(w, "Path:      %s\n", st.Workspace.Key)
	fmt.Fprintf(w, "State:     %s\n", st.State)
	if st.Ignored {
		fmt.Fprintln(w, warningStyle.Render("Ignored:   yes"))
	}
	fmt.Fprintf(w, "Theme:     %s\n", app.theme.Polarity())
	if st.AutoColor != "" {
		fmt.Fprintf(w, "Auto:      %s\n", tui.RenderSwatch(st.AutoColor, st.AutoColor, 10))
	}
	fmt.Fprintf(w, "Settings:  %s\n", app.store.Path(palette.ScopeWorkspace))

	if len(st.Colors) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No colours set"))
		return
	}
	fmt.Fprintln(w, "Colours:")
	for _, key := range color.PaletteKeys {
		value, ok := st.Colors[key]
		if !ok {
			continue
		}
		swatch := value
		if color.IsValid(value) {
			swatch = tui.RenderSwatch(value, value, 10)
		}
		fmt.Fprintf(w, "  %-34s %s\n", key, swatch)
	}
}
