package extract

import (
	"regexp"
	"strings"
)

// fenceRegex matches one fenced code block. The opening fence may carry a
// language word; the body is captured non-greedily so consecutive blocks
// stay separate.
var fenceRegex = regexp.MustCompile("(?s)```[a-zA-Z0-9_+-]*\\n(.*?)```")

// CodeBlocks returns the bodies of all fenced code blocks in text, in order,
// without the fence lines themselves. It returns nil when no fence is present.
func CodeBlocks(text string) []string {
	matches := fenceRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, strings.TrimSuffix(m[1], "\n"))
	}
	return blocks
}

// Rendered returns the code block bodies joined by newlines, falling back to
// the full raw text when the response contains no fences at all.
func Rendered(text string) string {
	blocks := CodeBlocks(text)
	if len(blocks) == 0 {
		return text
	}
	return strings.Join(blocks, "\n")
}
