// README: Prompt template for itinerary generation.
package trip

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the single user instruction sent to the completion provider.
// resolved is the geocoded destination address; it is mentioned only when it adds
// information beyond the destination the caller typed.
func BuildPrompt(req Request, resolved string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan a %d-day trip to %s.", req.Days, req.Destination)
	if resolved != "" && !strings.EqualFold(strings.TrimSpace(resolved), strings.TrimSpace(req.Destination)) {
		fmt.Fprintf(&b, " The destination is %s.", resolved)
	}
	b.WriteString(" For each day, write a heading of the form \"Day N:\" followed by Morning, Lunch, Afternoon and Evening sections describing the activities.")
	b.WriteString(" Return plain text only: no markdown, no code fences, no backticks and no explanatory preamble.")
	b.WriteString(" After the last day, add a plain-text list of travel tips.")
	if req.Theme != "" {
		fmt.Fprintf(&b, " Focus on %s experiences.", req.Theme)
	}
	if req.Pace != "" {
		fmt.Fprintf(&b, " The trip pace should be %s.", req.Pace)
	}
	return b.String()
}
