package console

import (
	"regexp"
	"strings"
)

var (
	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|content|}} format for direct style codes
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9_\-]+)\|\}\}`)

	// ansiRegex matches CSI escape sequences
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
)

func normalizeTag(name string) string {
	return strings.ToLower(strings.Trim(name, "_"))
}

// Parse renders tags as ANSI when color output is enabled, and strips them otherwise.
func Parse(text string) string {
	if ColorEnabled() {
		return ToANSI(text)
	}
	return Strip(text)
}

// ToANSI converts semantic and direct tags to ANSI escape sequences
// - {{_Tag_}} : Semantic lookup -> ANSI
// - {{|code|}} : Direct color name -> ANSI
// Unknown tags are removed.
func ToANSI(text string) string {
	text = semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		return semanticMap[normalizeTag(match[3:len(match)-3])]
	})
	return directRegex.ReplaceAllStringFunc(text, func(match string) string {
		return ansiMap[strings.ToLower(match[3:len(match)-3])]
	})
}

// Strip removes tags and ANSI escape sequences, leaving the printable text.
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	text = directRegex.ReplaceAllString(text, "")
	return ansiRegex.ReplaceAllString(text, "")
}
