package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// PreviewWithText returns a colour block with centred text drawn in the
// colour's best text polarity.
func PreviewWithText(c Color, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var fg uint8
	if c.TextOn == TextDark {
		fg = 0
	} else {
		fg = 255
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.RGB.R, c.RGB.G, c.RGB.B, ansiSuffix)
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg, fg, fg, ansiSuffix)

	// Pad or truncate text to fit width, counting runes.
	runes := []rune(text)
	displayText := text
	if len(runes) > width {
		displayText = string(runes[:width])
	} else if len(runes) < width {
		padding := (width - len(runes)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(runes)-padding)
	}

	return bgColour + fgColour + displayText + ansiReset
}
