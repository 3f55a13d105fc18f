package ollama

import (
	"regexp"
	"strings"
)

// Models asked for raw output still like to wrap it in a fenced block.
var fenceRe = regexp.MustCompile("(?s)```(?:[a-zA-Z0-9_-]+)?\\s(.*?)```")

// CleanResponse strips a markdown code fence from model output, returning
// the fenced content when one is present and the input unchanged
// otherwise.
func CleanResponse(text string) string {
	if !strings.Contains(text, "```") {
		return text
	}
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}
