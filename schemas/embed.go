// Package schemas holds the JSON Schema documents for CV input, analysis
// output and normalized job lists.
package schemas

import "embed"

// Schema file names
const (
	CV            = "cv.schema.json"
	ATSAnalysis   = "ats_analysis.schema.json"
	JobNormalized = "job_normalized.schema.json"
)

// FS contains every *.schema.json file in this directory
//
//go:embed *.schema.json
var FS embed.FS
