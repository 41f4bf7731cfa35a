package prdcompiler

import "strings"

var textCleaner = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"–", "-",
	"—", "-",
	"…", "...",
	"**", "",
)

// cleanText normalizes model output for the core PDF fonts: smart quotes
// and dashes become ASCII, stray markdown bold markers are dropped.
func cleanText(text string) string {
	return textCleaner.Replace(text)
}
