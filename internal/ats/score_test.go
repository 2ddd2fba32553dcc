package ats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-ats/internal/types"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		matched  int
		missing  int
		critical int
		expected int
	}{
		{"baseline", 0, 0, 0, 50},
		{"matched bonus rounds half up", 3, 0, 1, 53},
		{"matched bonus capped", 100, 0, 0, 90},
		{"missing penalty capped", 0, 100, 0, 20},
		{"critical penalty", 0, 3, 1, 45},
		{"clamped at zero", 0, 100, 20, 0},
		{"matched bonus", 20, 0, 0, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.matched, tt.missing, tt.critical))
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	for matched := 0; matched < 80; matched += 7 {
		for missing := 0; missing < 80; missing += 5 {
			for critical := 0; critical < 40; critical += 3 {
				s := Score(matched, missing, critical)
				assert.GreaterOrEqual(t, s, 0)
				assert.LessOrEqual(t, s, 100)
			}
		}
	}
}

func TestNormalizeWeights_SumsToOne(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		w := types.Weights{
			Keywords:   r.Float64() * 10,
			Sections:   r.Float64(),
			Length:     r.Float64() * 3,
			Experience: r.Float64() * 100,
			Formatting: r.Float64(),
		}

		got, err := NormalizeWeights(w)

		require.NoError(t, err)
		assert.InDelta(t, 1.0, got.Sum(), 1e-9)
	}

	t.Run("huge finite weights", func(t *testing.T) {
		got, err := NormalizeWeights(types.Weights{Keywords: 1e308, Sections: 1e308, Length: 1e308, Experience: 1e308, Formatting: 1e308})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got.Sum(), 1e-9)
		assert.InDelta(t, 0.2, got.Keywords, 1e-12)
	})

	t.Run("non-finite weights", func(t *testing.T) {
		_, err := NormalizeWeights(types.Weights{Keywords: math.Inf(1), Sections: 1})
		assert.Error(t, err)
		_, err = NormalizeWeights(types.Weights{Keywords: math.NaN()})
		assert.Error(t, err)
	})
}

func TestNormalizeWeights(t *testing.T) {
	got, err := NormalizeWeights(types.Weights{})
	require.NoError(t, err)
	assert.Equal(t, types.Weights{Keywords: 0.2, Sections: 0.2, Length: 0.2, Experience: 0.2, Formatting: 0.2}, got)

	got, err = NormalizeWeights(types.Weights{Keywords: 3, Length: 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, got.Keywords, 1e-12)
	assert.InDelta(t, 0.25, got.Length, 1e-12)

	_, err = NormalizeWeights(types.Weights{Keywords: 1, Formatting: -0.1})
	assert.Error(t, err)

	got, err = NormalizeWeights(DefaultWeights())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.Sum(), 1e-9)
}

func TestParseWeights(t *testing.T) {
	got, err := ParseWeights("keywords=0.5, Sections=0.25,length=0")
	require.NoError(t, err)
	assert.Equal(t, types.Weights{Keywords: 0.5, Sections: 0.25}, got)

	got, err = ParseWeights("")
	require.NoError(t, err)
	assert.Equal(t, types.Weights{}, got)

	for _, bad := range []string{"keywords", "color=1", "keywords=abc"} {
		_, err := ParseWeights(bad)
		assert.Error(t, err, bad)
	}
}

func TestScoreComponents(t *testing.T) {
	cv := &types.CVData{
		PersonalInfo: types.PersonalInfo{Email: "a@b.co"},
		Summary:      "A summary that is long enough to count as one.",
		Experience:   []types.Experience{{Title: "Engineer"}},
	}

	c := scoreComponents(cv, 1, 4, 100)

	assert.InDelta(t, 25, c.Keywords, 1e-9)
	assert.InDelta(t, 50, c.Sections, 1e-9)
	assert.InDelta(t, 50, c.Length, 1e-9)
	assert.InDelta(t, 60, c.Experience, 1e-9)
	assert.InDelta(t, 50, c.Formatting, 1e-9)

	assert.InDelta(t, 100, scoreComponents(cv, 0, 0, 600).Keywords, 1e-9)
	assert.InDelta(t, 100*1200.0/2400, scoreComponents(cv, 0, 0, 2400).Length, 1e-9)
}

func TestWeightedScore(t *testing.T) {
	c := Components{Keywords: 100, Sections: 50, Length: 100, Experience: 60, Formatting: 0}

	assert.Equal(t, 72, WeightedScore(DefaultWeights(), c))
	assert.Equal(t, 100, WeightedScore(types.Weights{Keywords: 1}, c))
	assert.Equal(t, 0, WeightedScore(types.Weights{Formatting: 1}, c))
	assert.Equal(t, 100, WeightedScore(types.Weights{Keywords: 2}, Components{Keywords: 100}))
	assert.False(t, math.IsNaN(float64(WeightedScore(types.Weights{}, c))))
}

func TestImportance(t *testing.T) {
	assert.InDelta(t, 0, Importance(0, false, false, false, false), 1e-9)
	assert.InDelta(t, 0.65, Importance(3, true, true, false, false), 1e-9)
	assert.InDelta(t, 0.5, Importance(12, false, false, false, false), 1e-9)
	assert.InDelta(t, 1, Importance(10, true, true, true, true), 1e-9)
	assert.InDelta(t, 0.15, Importance(0, false, false, true, true), 1e-9)
}

func TestStem(t *testing.T) {
	assert.Equal(t, "run test", Stem("running tests"))
	assert.Equal(t, "", Stem(""))
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"Résumé":              "resume",
		"IŞIK":                "isik",
		"Işık":                "isik",
		"İstanbul":            "istanbul",
		"  Node.js \n Docker ": "node.js docker",
		"Çağrı Merkezi":       "cagri merkezi",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, Normalize(input), input)
	}
}
