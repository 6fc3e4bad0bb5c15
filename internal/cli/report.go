package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/jmylchreest/brandpal/internal/accessibility"
	"github.com/jmylchreest/brandpal/internal/colour"
	"github.com/jmylchreest/brandpal/internal/palette"
)

const swatchWidth = 6

// styles holds the colours for one render. Whether to colour is decided per
// writer; fatih/color on its own only looks at os.Stdout.
type styles struct {
	heading *color.Color
	header  *color.Color
	pass    *color.Color
	fail    *color.Color
}

func newStyles(enabled bool) styles {
	s := styles{
		heading: color.New(color.Bold),
		header:  color.New(color.FgHiBlack),
		pass:    color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{s.heading, s.header, s.pass, s.fail} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// stylesFor enables colour only when w is a terminal and NO_COLOR is unset.
func stylesFor(w io.Writer) styles {
	return newStyles(isTerminal(w) && !color.NoColor)
}

func (s styles) headerCell(text string) string {
	return s.header.Sprint(text)
}

// writeReport renders a response as a human-readable report.
func writeReport(w io.Writer, resp palette.GenerateResponse, preview bool, st styles) error {
	in := resp.Input
	tone := string(in.BrandTone)
	if tone == "" {
		tone = string(in.BrandTone.OrDefault()) + " (default)"
	}
	seedText := "0"
	if in.Seed != nil {
		seedText = strconv.FormatInt(*in.Seed, 10)
	}
	fmt.Fprintf(w, "Industry: %s  Tone: %s  Theme: %s  Seed: %s\n",
		in.Industry, tone, in.ThemePreference, seedText)

	for i, p := range resp.Palettes {
		report, err := accessibility.Audit(accessibility.Set(p.Roles))
		if err != nil {
			return fmt.Errorf("failed to audit palette %d: %w", i+1, err)
		}

		fmt.Fprintln(w)
		st.heading.Fprintf(w, "%d. %s\n", i+1, p.Name)
		fmt.Fprintln(w)
		fmt.Fprint(w, rolesTable(p, report, preview, st).Render())
		fmt.Fprintln(w)
		fmt.Fprint(w, detailsTable(p, report, st).Render())
	}
	return nil
}

func rolesTable(p palette.Palette, report accessibility.Report, preview bool, st styles) *Table {
	headers := []string{"ROLE", "HEX", "RGB", "HSL", "TEXT", "CONTRAST", "WCAG"}
	if preview {
		headers = append([]string{"SWATCH"}, headers...)
	}
	table := NewTable(headers)
	table.SetHeaderStyle(st.headerCell)

	checks := make(map[colour.Role]accessibility.Check, len(report.Checks))
	for _, c := range report.Checks {
		checks[c.Role] = c
	}

	for _, c := range p.Swatches {
		contrast, grade := "-", "-"
		if check, ok := checks[c.Role]; ok {
			contrast = fmt.Sprintf("%.2f:1", check.Contrast)
			grade = wcagGrade(check, st)
		}
		row := []string{
			string(c.Role),
			c.Hex,
			fmt.Sprintf("%d, %d, %d", c.RGB.R, c.RGB.G, c.RGB.B),
			c.HSL.String(),
			string(c.TextOn),
			contrast,
			grade,
		}
		if preview {
			row = append([]string{colour.PreviewWithText(c, "Aa", swatchWidth)}, row...)
		}
		table.AddRow(row)
	}
	return table
}

// wcagGrade is the highest level a check meets.
func wcagGrade(c accessibility.Check, st styles) string {
	switch {
	case c.AAA:
		return st.pass.Sprint("AAA")
	case c.AA:
		return st.pass.Sprint("AA")
	case c.AALarge:
		return st.fail.Sprint("AA large")
	default:
		return st.fail.Sprint("fail")
	}
}

func detailsTable(p palette.Palette, report accessibility.Report, st styles) *Table {
	table := NewTable([]string{"FIELD", "VALUE"})
	table.SetHeaderStyle(st.headerCell)
	table.SetColumnMaxWidth(1, 72)

	ty := p.Typography
	table.AddRow([]string{"headline", fmt.Sprintf("%s %s", ty.Headline, weights(ty.HeadlineWeights))})
	table.AddRow([]string{"body", fmt.Sprintf("%s %s", ty.Body, weights(ty.BodyWeights))})
	table.AddRow([]string{"icons", p.IconStyle})
	for _, img := range p.Imagery {
		table.AddRow([]string{"imagery", img})
	}
	for i, prompt := range p.LogoPrompts {
		table.AddRow([]string{fmt.Sprintf("logo %d", i+1), prompt})
	}

	verdict := st.pass.Sprint("yes")
	if !report.Distinguishable {
		verdict = st.fail.Sprint("no")
	}
	table.AddRow([]string{"colour-blind safe", verdict})
	return table
}

func weights(ws []int) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = strconv.Itoa(w)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
