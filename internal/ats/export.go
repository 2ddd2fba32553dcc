package ats

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jonathan/job-ats/internal/types"
)

var keywordsCSVHeader = []string{
	"term", "stem", "importance", "in_title", "in_requirements",
	"in_qualifications", "in_responsibilities", "status",
}

// WriteKeywordsCSV writes one row per job keyword with its stem, importance,
// location flags and matched/missing status. Results analyzed without the
// importance pass export matched then missing keywords with zero importance.
func WriteKeywordsCSV(w io.Writer, result *types.ATSAnalysisResult) error {
	if result == nil {
		return fmt.Errorf("no analysis result to export")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(keywordsCSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, m := range exportRows(result) {
		status := "missing"
		if m.Matched {
			status = "matched"
		}
		row := []string{
			m.Term,
			m.Stem,
			strconv.FormatFloat(m.Importance, 'f', 2, 64),
			strconv.FormatBool(m.InTitle),
			strconv.FormatBool(m.InRequirements),
			strconv.FormatBool(m.InQualifications),
			strconv.FormatBool(m.InResponsibilities),
			status,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %q: %w", m.Term, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func exportRows(result *types.ATSAnalysisResult) []types.KeywordMeta {
	if len(result.KeywordMeta) > 0 {
		return result.KeywordMeta
	}
	rows := make([]types.KeywordMeta, 0, len(result.MatchedKeywords)+len(result.MissingKeywords))
	for _, term := range result.MatchedKeywords {
		rows = append(rows, types.KeywordMeta{Term: term, Stem: Stem(Normalize(term)), Matched: true})
	}
	for _, term := range result.MissingKeywords {
		rows = append(rows, types.KeywordMeta{Term: term, Stem: Stem(Normalize(term))})
	}
	return rows
}

// WriteResultJSON writes the full analysis result as indented JSON
func WriteResultJSON(w io.Writer, result *types.ATSAnalysisResult) error {
	if result == nil {
		return fmt.Errorf("no analysis result to export")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode analysis result: %w", err)
	}
	return nil
}
