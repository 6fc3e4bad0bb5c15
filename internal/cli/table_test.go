package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/brandpal/internal/colour"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"ROLE", "HEX"})

	table.AddRow([]string{"primary", "#13496c"})
	table.AddRow([]string{"accent"})
	table.AddRow([]string{"neutral", "#999999", "extra"})

	if len(table.rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d cells, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("padded cell = %q, want empty", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"ROLE", "HEX", "CONTRAST"})
	table.AddRow([]string{"primary", "#13496c", "7.65:1"})
	table.AddRow([]string{"background", "#e0e7eb", "-"})

	want := "" +
		"ROLE        HEX      CONTRAST\n" +
		"----------  -------  --------\n" +
		"primary     #13496c  7.65:1\n" +
		"background  #e0e7eb  -\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() with no headers = %q, want empty", got)
	}

	got := NewTable([]string{"NAME"}).Render()
	if got != "NAME\n----\n" {
		t.Errorf("Render() with no rows = %q", got)
	}
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	c, err := colour.NewColor("#13496c", colour.RolePrimary)
	if err != nil {
		t.Fatal(err)
	}
	swatch := colour.PreviewWithText(c, "", 4)
	table := NewTable([]string{"SWATCH", "HEX"})
	table.AddRow([]string{swatch, "#13496c"})
	table.AddRow([]string{"", "#e0e7eb"})

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	// "SWATCH" is wider than the four-cell preview.
	if got := visibleLen(lines[2]); got != len("SWATCH  #13496c") {
		t.Errorf("styled row visible width = %d, want %d (%q)", got, len("SWATCH  #13496c"), lines[2])
	}
	if lines[3] != "        #e0e7eb" {
		t.Errorf("plain row = %q", lines[3])
	}
}

func TestTableHeaderStyle(t *testing.T) {
	table := NewTable([]string{"A", "B"})
	table.SetHeaderStyle(func(s string) string { return "<" + s + ">" })
	table.AddRow([]string{"xx", "y"})

	first := strings.SplitN(table.Render(), "\n", 2)[0]
	if first != "<A >  <B>" {
		t.Errorf("header = %q", first)
	}
}

func TestTableColumnWrap(t *testing.T) {
	table := NewTable([]string{"FIELD", "VALUE"})
	table.SetColumnMaxWidth(1, 20)
	table.AddRow([]string{"imagery", "warm soft natural light shadows"})

	out := table.Render()
	for _, want := range []string{"imagery  warm soft natural", "         light shadows"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "abc", width: 5, want: "abc  "},
		{in: "abcdef", width: 3, want: "abcdef"},
		{in: "", width: 2, want: "  "},
		{in: "\x1b[1mab\x1b[0m", width: 4, want: "\x1b[1mab\x1b[0m  "},
	}
	for _, tt := range tests {
		if got := padRight(tt.in, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "fits", text: "sharp", width: 10, want: []string{"sharp"}},
		{name: "word boundary", text: "outline rounded sharp", width: 15, want: []string{"outline rounded", "sharp"}},
		{name: "long word", text: "handcrafted", width: 4, want: []string{"hand", "craf", "ted"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapText() = %q, want %q", got, tt.want)
			}
		})
	}
}
