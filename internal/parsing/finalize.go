package parsing

import (
	"github.com/jonathan/job-ats/internal/types"
)

// FinalizeParsedJob returns a copy of pj whose Overall is the mean confidence
// of the identity fields that were extracted (title, company, location), or
// ConfNeutralPrior when none was. Absent fields do not count as zero.
// Finalizing a finalized job changes nothing.
func FinalizeParsedJob(pj types.ParsedJob) types.ParsedJob {
	out := pj
	out.Keywords = append([]string(nil), pj.Keywords...)

	var sum float64
	var n int
	for _, field := range []*types.FieldConfidence[string]{pj.Title, pj.Company, pj.Location} {
		if field != nil {
			sum += field.Confidence
			n++
		}
	}

	if n == 0 {
		out.Overall = ConfNeutralPrior
	} else {
		out.Overall = sum / float64(n)
	}
	return out
}
