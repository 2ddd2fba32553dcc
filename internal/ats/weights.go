package ats

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-ats/internal/types"
)

var validate = validator.New()

// DefaultWeights returns the weights reported when the caller supplies none
func DefaultWeights() types.Weights {
	return types.Weights{
		Keywords:   0.4,
		Sections:   0.2,
		Length:     0.1,
		Experience: 0.2,
		Formatting: 0.1,
	}
}

// NormalizeWeights scales w so the weights sum to 1. An all-zero vector is
// split equally. Negative or non-finite weights are rejected.
func NormalizeWeights(w types.Weights) (types.Weights, error) {
	if err := validate.Struct(w); err != nil {
		return types.Weights{}, fmt.Errorf("invalid weights: %w", err)
	}

	components := []float64{w.Keywords, w.Sections, w.Length, w.Experience, w.Formatting}
	largest := 0.0
	for _, c := range components {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return types.Weights{}, fmt.Errorf("invalid weights: %v is not a finite number", c)
		}
		largest = math.Max(largest, c)
	}
	if largest == 0 {
		return types.Weights{Keywords: 0.2, Sections: 0.2, Length: 0.2, Experience: 0.2, Formatting: 0.2}, nil
	}

	// scale by the largest component first so the sum cannot overflow
	scaled := types.Weights{
		Keywords:   w.Keywords / largest,
		Sections:   w.Sections / largest,
		Length:     w.Length / largest,
		Experience: w.Experience / largest,
		Formatting: w.Formatting / largest,
	}
	sum := scaled.Sum()
	return types.Weights{
		Keywords:   scaled.Keywords / sum,
		Sections:   scaled.Sections / sum,
		Length:     scaled.Length / sum,
		Experience: scaled.Experience / sum,
		Formatting: scaled.Formatting / sum,
	}, nil
}

// ParseWeights reads "keywords=0.5,sections=0.2,...". Unnamed components are zero.
func ParseWeights(s string) (types.Weights, error) {
	var w types.Weights
	fields := map[string]*float64{
		"keywords":   &w.Keywords,
		"sections":   &w.Sections,
		"length":     &w.Length,
		"experience": &w.Experience,
		"formatting": &w.Formatting,
	}

	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return types.Weights{}, fmt.Errorf("invalid weight %q: expected name=value", pair)
		}
		target, known := fields[strings.ToLower(strings.TrimSpace(name))]
		if !known {
			return types.Weights{}, fmt.Errorf("unknown weight %q", name)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return types.Weights{}, fmt.Errorf("invalid weight %q: %w", pair, err)
		}
		*target = v
	}
	return w, nil
}
