package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRe     = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	excessBlankRe    = regexp.MustCompile(`\n\n\n+`)
	bulletPrefixes   = []string{"- ", "* ", "• ", "· ", "– "}
	zeroWidthReplace = strings.NewReplacer("\u200b", "", "\ufeff", "", "\u200c", "", "\u200d", "")
)

// AdaptText is the plain-text adapter: the payload is taken as-is and cleaned.
func AdaptText(payload []byte) string {
	return CleanText(string(payload))
}

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = zeroWidthReplace.Replace(content)

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving headings and bullets
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return innerSpaceRe.ReplaceAllString(trimmed, " ")
	}

	// bullets keep their nesting indent
	indent := len(line) - len(trimmed)
	content := innerSpaceRe.ReplaceAllString(trimmed, " ")
	if isBulletLine(trimmed) && indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 2
func removeExcessiveBlankLines(content string) string {
	return excessBlankRe.ReplaceAllString(content, "\n\n")
}
