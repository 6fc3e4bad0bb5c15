package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandpal/internal/brand"
)

func newIndustriesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "industries",
		Short: "List the known industries",
		Long: `List the industries with dedicated hue rules. Any other industry falls back
to the technology rule.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			industries := brand.Industries()
			if asJSON {
				labels := make([]string, len(industries))
				for i, ind := range industries {
					labels[i] = ind.Label()
				}
				return writeJSON(out, map[string][]string{"industries": labels})
			}

			table := NewTable([]string{"INDUSTRY", "KEY", "BASE HUE", "ACCENT", "NEUTRAL"})
			table.SetHeaderStyle(stylesFor(out).headerCell)
			for _, ind := range industries {
				rule := brand.IndustryHues(string(ind), "", nil)
				accent := "base+180"
				if rule.AccentHue != nil {
					accent = strconv.Itoa(*rule.AccentHue)
				}
				table.AddRow([]string{
					ind.Label(),
					string(ind),
					fmt.Sprintf("%d-%d", rule.BaseHue[0], rule.BaseHue[1]),
					accent,
					strconv.Itoa(rule.NeutralHue),
				})
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newTonesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "tones",
		Short: "List the brand tones",
		Long: fmt.Sprintf(`List the brand tones with their colour bias and typography.
Without a tone, %s is used.`, brand.DefaultTone),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			tones := brand.Tones()
			if asJSON {
				return writeJSON(out, map[string][]brand.Tone{"tones": tones})
			}

			table := NewTable([]string{"TONE", "SATURATION", "LIGHTNESS", "HEADLINE", "BODY"})
			table.SetHeaderStyle(stylesFor(out).headerCell)
			for _, t := range tones {
				m := brand.Modifier(t)
				ty := brand.TypographyFor(t)
				table.AddRow([]string{
					string(t),
					strconv.FormatFloat(m.Saturation, 'f', -1, 64),
					strconv.FormatFloat(m.Lightness, 'f', -1, 64),
					ty.Headline,
					ty.Body,
				})
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
