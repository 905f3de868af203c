package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/colorspace/internal/color"
	"github.com/balkashynov/colorspace/internal/tui"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in colour presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		presets := color.Catalog

		if name, _ := cmd.Flags().GetString("category"); name != "" {
			category, err := findCategory(name)
			if err != nil {
				return err
			}
			presets = color.InCategory(category)
		}
		if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
			polarity, err := color.ParsePolarity(theme)
			if err != nil {
				return err
			}
			presets = color.Matching(presets, polarity)
		}

		lang, _ := cmd.Flags().GetString("lang")
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderPresetTable(presets, color.Language(lang)))
		return nil
	},
}

func init() {
	presetsCmd.Flags().String("category", "", "only this category: light, dark or classic")
	presetsCmd.Flags().String("theme", "", "only presets for a dark or light theme")
	presetsCmd.Flags().String("lang", "en", "name language: en or zh")
}

// findCategory matches a category by any word of its name, case-insensitively
func findCategory(name string) (color.Category, error) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return "", fmt.Errorf("empty category name")
	}
	for _, c := range color.Categories {
		full := strings.ToLower(string(c))
		if full == q {
			return c, nil
		}
		for _, word := range strings.Fields(strings.Trim(full, "()")) {
			if strings.Trim(word, "()&") == q && q != "morandi" {
				return c, nil
			}
		}
	}
	return "", fmt.Errorf("unknown category %q, use light, dark or classic", name)
}
