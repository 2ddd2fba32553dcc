package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-ats/internal/types"
)

func TestDetectLang(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.Language
	}{
		{"english", "Senior Backend Engineer", types.LangEnglish},
		{"turkish", "Kıdemli Yazılım Geliştirici arıyoruz", types.LangTurkish},
		{"below threshold", "Müller GmbH, Zürich", types.LangEnglish},
		{"upper-case turkish", "İŞ TANIMI VE ŞARTLAR", types.LangTurkish},
		{"empty", "", types.LangUnknown},
		{"digits and symbols", "2026 - 10/10 $$$", types.LangUnknown},
		{"cyrillic", "Разработчик", types.LangUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectLang(tt.input))
		})
	}
}
