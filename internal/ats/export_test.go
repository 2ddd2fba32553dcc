package ats

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-ats/internal/types"
)

func TestWriteKeywordsCSV(t *testing.T) {
	result := &types.ATSAnalysisResult{
		KeywordMeta: []types.KeywordMeta{
			{Term: "Go", Stem: "go", Importance: 0.55, InTitle: true, InRequirements: true, Matched: true},
			{Term: `Say "hi", please`, Stem: "say hi pleas", Importance: 0.1, InResponsibilities: true},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteKeywordsCSV(&buf, result))

	expected := "term,stem,importance,in_title,in_requirements,in_qualifications,in_responsibilities,status\n" +
		"Go,go,0.55,true,true,false,false,matched\n" +
		`"Say ""hi"", please",say hi pleas,0.10,false,false,false,true,missing` + "\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteKeywordsCSV_WithoutImportance(t *testing.T) {
	result := &types.ATSAnalysisResult{
		MatchedKeywords: []string{"React"},
		MissingKeywords: []string{"Unit Testing"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteKeywordsCSV(&buf, result))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "React", records[1][0])
	assert.Equal(t, "matched", records[1][7])
	assert.Equal(t, "Unit Testing", records[2][0])
	assert.Equal(t, "unit test", records[2][1])
	assert.Equal(t, "0.00", records[2][2])
	assert.Equal(t, "missing", records[2][7])
}

func TestWriteKeywordsCSV_Nil(t *testing.T) {
	assert.Error(t, WriteKeywordsCSV(&bytes.Buffer{}, nil))
}

func TestWriteResultJSON_RoundTrip(t *testing.T) {
	cv := scenarioCV()
	result := Analyze(cv, scenarioJob(), Options{Now: fixedNow, Importance: true, Weights: &types.Weights{Keywords: 1, Sections: 1}})

	var buf bytes.Buffer
	require.NoError(t, WriteResultJSON(&buf, result))
	assert.Contains(t, buf.String(), "\n  \"score\": 45")

	var decoded types.ATSAnalysisResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *result, decoded)
}

func TestWriteResultJSON_Nil(t *testing.T) {
	assert.Error(t, WriteResultJSON(&bytes.Buffer{}, nil))
}
