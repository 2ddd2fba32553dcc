package parsing

import (
	"regexp"
	"strings"
)

// dottedIReplacer removes the Turkish dotted/dotless i distinction before lowercasing
var dottedIReplacer = strings.NewReplacer("İ", "i", "ı", "i")

// fold lowercases s for matching. Turkish İ and ı both become i so that
// upper-case headers ("İŞ TANIMI") and lower-case patterns agree.
func fold(s string) string {
	return strings.ToLower(dottedIReplacer.Replace(s))
}

// wordPattern compiles a case-insensitive alternation bounded by non-letters.
// Alternatives are folded, so they may be written with Turkish letters.
func wordPattern(alternatives ...string) *regexp.Regexp {
	quoted := make([]string, len(alternatives))
	for i, alt := range alternatives {
		quoted[i] = regexp.QuoteMeta(fold(alt))
	}
	return regexp.MustCompile(`(?:^|[^\p{L}\p{N}])(?:` + strings.Join(quoted, "|") + `)(?:$|[^\p{L}\p{N}])`)
}

// trimDecoration strips markdown heading marks, bullets and emphasis around a line
func trimDecoration(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "#*-•·– \t")
	line = strings.TrimRight(line, "* \t")
	return strings.TrimSpace(line)
}
