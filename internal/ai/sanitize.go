package ai

import (
	"regexp"
	"strings"
)

// fenceOpen matches an opening fence with its optional language tag and line break.
var fenceOpen = regexp.MustCompile("```[A-Za-z0-9_+.-]*[ \t]*\r?\n")

// cleanItinerary strips code-fence markers (keeping the fenced text) and surrounding whitespace.
func cleanItinerary(input string) string {
	out := fenceOpen.ReplaceAllString(input, "")
	out = strings.ReplaceAll(out, "```", "")
	return strings.TrimSpace(out)
}
