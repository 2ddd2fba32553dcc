package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/job-ats/internal/types"
)

// MaxKeywords caps the keyword list of a parsed job
const MaxKeywords = 150

// keywordSections are tokenized in this order; benefits and the raw text
// never contribute keywords.
var keywordSections = []types.SectionKind{
	types.SectionRequirements,
	types.SectionQualifications,
	types.SectionResponsibilities,
	types.SectionSummary,
}

// tokenRe keeps + # . / - inside tokens so "c++", "c#", "node.js" and "ci/cd" survive
var tokenRe = regexp.MustCompile(`\.?[\p{L}\p{N}][\p{L}\p{N}+#./\-]*`)

var stopwords = foldedSet(
	// English
	"a", "about", "above", "across", "after", "all", "also", "an", "and", "any", "are", "as", "at", "be",
	"been", "being", "both", "but", "by", "can", "could", "do", "does", "each", "either", "etc", "for",
	"from", "good", "great", "has", "have", "having", "how", "if", "in", "including", "into", "is", "it",
	"its", "job", "least", "like", "make", "more", "most", "must", "new", "not", "of", "on", "one", "or",
	"other", "our", "out", "over", "own", "per", "plus", "preferred", "required", "role", "should", "so",
	"some", "strong", "such", "than", "that", "the", "their", "them", "there", "these", "they", "this",
	"those", "through", "to", "up", "use", "using", "very", "we", "well", "what", "when", "where",
	"which", "while", "who", "will", "with", "within", "work", "working", "would", "year", "years",
	"you", "your", "ability", "able", "experience", "experienced", "knowledge", "understanding",
	"skills", "skill", "team", "teams", "e.g", "i.e", "eg", "ie",
	// Turkish
	"ve", "ile", "için", "bir", "bu", "da", "de", "olan", "olarak", "gibi", "en", "az", "çok", "daha",
	"her", "ya", "veya", "ki", "mi", "ne", "o", "şu", "sahip", "tercihen", "yıl", "yıllık", "deneyim",
	"deneyimli", "bilgi", "bilgisi", "bilgisine", "konusunda", "alanında", "iyi", "tercih", "sebebi",
	"aday", "adaylar", "ekip", "ekibimize", "çalışma", "çalışmak", "olmak", "yapmak", "edebilen",
	"yapabilen", "sahibi", "üzere", "kadar", "sonra", "önce", "tüm", "ilgili", "konularında",
)

// ExtractKeywords builds the keyword list from the summary, responsibilities,
// requirements and qualifications sections. Taxonomy phrases found verbatim
// come first, then single tokens. Aliases expand to canonical names; other
// tokens are lowercased. The list is deduplicated and capped at MaxKeywords.
func ExtractKeywords(sections types.SectionSet, taxonomy *Taxonomy) []string {
	var texts []string
	for _, kind := range keywordSections {
		for _, item := range sections.List(kind) {
			texts = append(texts, fold(item))
		}
	}
	if len(texts) == 0 {
		return []string{}
	}

	keywords := make([]string, 0, 32)
	seen := make(map[string]bool)
	add := func(k string) bool {
		key := fold(k)
		if key == "" || seen[key] {
			return len(keywords) < MaxKeywords
		}
		seen[key] = true
		keywords = append(keywords, k)
		return len(keywords) < MaxKeywords
	}

	// phrases first; matched spans are blanked so their words are not re-added as tokens
	for i, text := range texts {
		for _, phrase := range taxonomy.Phrases() {
			var found bool
			text, found = blankPhrase(text, phrase)
			if !found {
				continue
			}
			keyword := phrase
			if canonical, ok := taxonomy.Canonical(phrase); ok {
				keyword = canonical
			}
			if !add(keyword) {
				return keywords
			}
		}
		texts[i] = text
	}

	for _, text := range texts {
		for _, token := range tokenRe.FindAllString(text, -1) {
			for _, keyword := range tokenKeywords(token, taxonomy) {
				if !add(keyword) {
					return keywords
				}
			}
		}
	}
	return keywords
}

// tokenKeywords maps one raw token to zero or more keywords
func tokenKeywords(token string, taxonomy *Taxonomy) []string {
	token = strings.TrimRight(token, "./-")
	if canonical, ok := taxonomy.Canonical(token); ok {
		return []string{canonical}
	}
	if strings.Contains(token, "/") {
		var out []string
		for _, part := range strings.Split(token, "/") {
			out = append(out, tokenKeywords(part, taxonomy)...)
		}
		return out
	}
	token = strings.TrimLeft(token, ".")
	if utf8.RuneCountInString(token) < 2 || stopwords[token] || !hasLetter(token) {
		return nil
	}
	return []string{token}
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// blankPhrase replaces every word-bounded occurrence of phrase in text with
// spaces and reports whether one was found
func blankPhrase(text, phrase string) (string, bool) {
	found := false
	offset := 0
	for {
		idx := strings.Index(text[offset:], phrase)
		if idx < 0 {
			return text, found
		}
		start := offset + idx
		end := start + len(phrase)
		if isBoundary(text, start, end) {
			text = text[:start] + strings.Repeat(" ", len(phrase)) + text[end:]
			found = true
		}
		offset = end
	}
}

// isBoundary reports whether text[start:end] is not embedded in a longer word
func isBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
