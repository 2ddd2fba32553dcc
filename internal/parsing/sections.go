package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-ats/internal/types"
)

// sectionHeaders holds the ordered header patterns per language and kind.
// Patterns match a folded header line with bullets, markdown marks and any
// trailing ":" content removed.
var sectionHeaders = map[types.Language]map[types.SectionKind][]*regexp.Regexp{
	types.LangEnglish: {
		types.SectionSummary: headerPatterns(
			`(?:job|position|role) summary`, `summary`, `overview`, `about (?:the|this) (?:role|job|position|opportunity)`,
			`the role`, `(?:job|role|position) description`, `description`,
		),
		types.SectionResponsibilities: headerPatterns(
			`(?:key |main |your |core )?responsibilities`, `what you(?:['’]ll| will) do`, `(?:job |your )?duties`,
			`in this role,? you will`, `your role`, `day to day`, `what you will be doing`,
		),
		types.SectionRequirements: headerPatterns(
			`(?:job |minimum |basic |technical )?requirements`, `what you(?:['’]ll| will)? need`, `must[ -]haves?`,
			`what we(?:['’]re| are) looking for`, `who you are`, `required skills`, `skills`,
		),
		types.SectionQualifications: headerPatterns(
			`(?:preferred |desired |minimum |basic |additional )?qualifications`, `nice[ -]to[ -]haves?`,
			`bonus points`, `preferred skills`, `pluses`, `education`,
		),
		types.SectionBenefits: headerPatterns(
			`benefits`, `(?:compensation|salary) (?:and|&) benefits`, `perks(?: (?:and|&) benefits)?`, `what we offer`,
			`we offer`, `why (?:join us|work with us)`,
		),
	},
	types.LangTurkish: {
		types.SectionSummary: headerPatterns(
			`iş tanımı`, `pozisyon tanımı`, `pozisyon hakkında`, `özet`, `genel bakış`, `iş ilanı`,
		),
		types.SectionResponsibilities: headerPatterns(
			`(?:görev ve |temel )?sorumluluklar`, `görevler`, `neler yapacaksın`, `yapacağın işler`,
			`iş tanımı ve sorumluluklar`,
		),
		types.SectionRequirements: headerPatterns(
			`aranan (?:nitelikler|özellikler)`, `gereksinimler`, `beklentilerimiz`, `aradığımız (?:özellikler|nitelikler)`,
			`şartlar`, `aday(?:da|larda) aranan (?:nitelikler|özellikler)`,
		),
		types.SectionQualifications: headerPatterns(
			`(?:genel )?nitelikler`, `tercih sebebi`, `tercihen`, `artı değer`, `yetkinlikler`, `eğitim`,
		),
		types.SectionBenefits: headerPatterns(
			`yan haklar`, `sunduklarımız`, `sağladığımız (?:imkanlar|olanaklar)`, `avantajlar`, `olanaklar`,
			`neler sunuyoruz`,
		),
	},
}

// listMarkerRe matches a leading list marker: -, *, •, ·, –, "1." or "1)"
var listMarkerRe = regexp.MustCompile(`^\s*(?:[-*•·–]|\d{1,2}[.)])\s+`)

// headerPatterns anchors each folded alternative to the whole header text
func headerPatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`^` + fold(p) + `$`)
	}
	return compiled
}

// headerLanguages returns the header pattern languages to try, in order
func headerLanguages(lang types.Language) []types.Language {
	if lang == types.LangTurkish {
		return []types.Language{types.LangTurkish, types.LangEnglish}
	}
	return []types.Language{types.LangEnglish, types.LangTurkish}
}

// headerLine is a candidate header: the folded header text and any inline content after ":"
type headerLine struct {
	key    string
	inline string
}

// parseHeaderLine splits "Requirements: SQL" into its header key and inline
// content. Lines longer than a header plausibly is are rejected.
func parseHeaderLine(line string) (headerLine, bool) {
	if listMarkerRe.MatchString(line) {
		return headerLine{}, false
	}
	trimmed := trimDecoration(line)
	if trimmed == "" {
		return headerLine{}, false
	}
	head, rest, _ := strings.Cut(trimmed, ":")
	head = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(head), "*.!?"))
	if head == "" || len([]rune(head)) > 60 {
		return headerLine{}, false
	}
	return headerLine{key: fold(head), inline: strings.TrimSpace(strings.Trim(rest, "* \t"))}, true
}

// SplitSections segments text into the five canonical sections. For each kind
// the header patterns are tried in order; the first matching line starts the
// section, which runs to the next blank-line block boundary, the next header,
// or the end of the text. A header followed by blank lines takes the next block.
func SplitSections(text string, lang types.Language) types.SectionSet {
	set := types.SectionSet{RawText: text}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	headers := make([]*headerLine, len(lines))
	kinds := make([]types.SectionKind, len(lines))
	for i, line := range lines {
		h, ok := parseHeaderLine(line)
		if !ok {
			continue
		}
		if kind, ok := matchAnyHeader(h.key); ok {
			headers[i] = &h
			kinds[i] = kind
		}
	}

	for _, kind := range types.SectionKinds {
		start := findHeader(lines, headers, kind, lang)
		if start < 0 {
			continue
		}
		block := collectBlock(lines, headers, start)
		if inline := headers[start].inline; inline != "" {
			block = append([]string{inline}, block...)
		}
		assignSection(&set, kind, block)
	}
	return set
}

// matchAnyHeader reports the first section kind whose patterns match key in any language
func matchAnyHeader(key string) (types.SectionKind, bool) {
	for _, lang := range []types.Language{types.LangEnglish, types.LangTurkish} {
		for _, kind := range types.SectionKinds {
			for _, re := range sectionHeaders[lang][kind] {
				if re.MatchString(key) {
					return kind, true
				}
			}
		}
	}
	return "", false
}

// findHeader returns the line index of the first header for kind, trying the
// patterns in order, or -1
func findHeader(lines []string, headers []*headerLine, kind types.SectionKind, lang types.Language) int {
	for _, l := range headerLanguages(lang) {
		for _, re := range sectionHeaders[l][kind] {
			for i := range lines {
				if headers[i] != nil && re.MatchString(headers[i].key) {
					return i
				}
			}
		}
	}
	return -1
}

// collectBlock returns the non-empty lines after the header at start, up to
// the next blank line or header
func collectBlock(lines []string, headers []*headerLine, start int) []string {
	i := start + 1
	if headers[start].inline == "" {
		for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			i++
		}
	}

	var block []string
	for ; i < len(lines); i++ {
		if headers[i] != nil || strings.TrimSpace(lines[i]) == "" {
			break
		}
		block = append(block, strings.TrimSpace(lines[i]))
	}
	return block
}

func assignSection(set *types.SectionSet, kind types.SectionKind, block []string) {
	if kind == types.SectionSummary {
		summary := strings.TrimSpace(strings.Join(block, "\n"))
		set.Summary = &summary
		return
	}

	items := splitListItems(block)
	switch kind {
	case types.SectionResponsibilities:
		set.Responsibilities = items
	case types.SectionRequirements:
		set.Requirements = items
	case types.SectionQualifications:
		set.Qualifications = items
	case types.SectionBenefits:
		set.Benefits = items
	}
}

// splitListItems turns block lines into list items. When any line carries a
// list marker, unmarked lines continue the previous item; otherwise each line
// is an item. A single unmarked line with commas or semicolons is split on them.
// The result is never nil.
func splitListItems(block []string) []string {
	items := []string{}
	hasMarkers := false
	for _, line := range block {
		if listMarkerRe.MatchString(line) {
			hasMarkers = true
			break
		}
	}

	if !hasMarkers && len(block) == 1 && strings.ContainsAny(block[0], ",;") {
		for _, part := range strings.FieldsFunc(block[0], func(r rune) bool { return r == ',' || r == ';' }) {
			if part = strings.TrimSpace(strings.TrimRight(part, ".")); part != "" {
				items = append(items, part)
			}
		}
		return items
	}

	for _, line := range block {
		if hasMarkers && !listMarkerRe.MatchString(line) && len(items) > 0 {
			items[len(items)-1] += " " + line
			continue
		}
		if item := strings.TrimSpace(listMarkerRe.ReplaceAllString(line, "")); item != "" {
			items = append(items, item)
		}
	}
	return items
}
