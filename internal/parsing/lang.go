package parsing

import (
	"strings"

	"github.com/jonathan/job-ats/internal/types"
)

// turkishDiacriticThreshold is the number of Turkish-specific letters needed to call a text Turkish
const turkishDiacriticThreshold = 3

const turkishLetters = "çğıöşüÇĞİÖŞÜ"

// DetectLang classifies text as Turkish, English or unknown.
// Turkish-specific letters beyond the threshold win; otherwise any ASCII
// Latin letter means English.
func DetectLang(text string) types.Language {
	diacritics := 0
	latin := false
	for _, r := range text {
		if strings.ContainsRune(turkishLetters, r) {
			diacritics++
			if diacritics >= turkishDiacriticThreshold {
				return types.LangTurkish
			}
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			latin = true
		}
	}
	if latin {
		return types.LangEnglish
	}
	return types.LangUnknown
}
