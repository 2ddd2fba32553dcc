// Package dedupe flattens parsed jobs into JobNormalized records and merges
// records that describe the same posting.
package dedupe

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/job-ats/internal/types"
)

const (
	// descriptionRichnessUnit is the description length worth one richness point
	descriptionRichnessUnit = 500
	// keywordRichnessUnit is the keyword count worth one richness point
	keywordRichnessUnit = 10
)

// Fingerprint identifies a posting by title, company, location and URL.
// Case and runs of whitespace are ignored, and so are the URL query and fragment.
func Fingerprint(title, company, location, rawURL string) string {
	key := strings.Join([]string{
		collapse(title),
		collapse(company),
		collapse(location),
		collapse(stripQuery(rawURL)),
	}, "|")
	sum := sha256.Sum256([]byte(strings.ToLower(key)))
	return hex.EncodeToString(sum[:])
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripQuery drops everything from the first "?" or "#"
func stripQuery(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if u, err := url.Parse(rawURL); err == nil {
		u.RawQuery = ""
		u.ForceQuery = false
		u.Fragment = ""
		u.RawFragment = ""
		return u.String()
	}
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}

// Normalize flattens a ParsedJob into its dedup-ready form
func Normalize(pj types.ParsedJob) types.JobNormalized {
	j := types.JobNormalized{
		Title:          pj.TitleValue(),
		Company:        pj.CompanyValue(),
		Location:       pj.LocationValue(),
		URL:            pj.Source.URL,
		RemoteType:     pj.RemoteType.Value,
		EmploymentType: pj.EmploymentType.Value,
		Seniority:      pj.Seniority.Value,
		Keywords:       append([]string{}, pj.Keywords...),
		Sections:       pj.Sections,
		Description:    pj.Description,
		Language:       pj.Language,
		Source:         pj.Source,
		Confidence:     pj.Overall,
	}
	if pj.Salary != nil {
		salary := pj.Salary.Value
		j.Salary = &salary
	}
	if pj.PostedAt != nil {
		j.PostedAt = timePtr(pj.PostedAt.Value)
	}
	if pj.DeadlineAt != nil {
		j.DeadlineAt = timePtr(pj.DeadlineAt.Value)
	}
	if pj.Recruiter != nil {
		recruiter := pj.Recruiter.Value
		j.Recruiter = &recruiter
	}

	j.Fingerprint = Fingerprint(j.Title, j.Company, j.Location, j.URL)
	j.Richness = Richness(j)
	return j
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// Richness scores how much information a record carries:
// one point each for salary and posting date, plus description length and keyword count.
func Richness(j types.JobNormalized) float64 {
	var r float64
	if j.Salary != nil {
		r++
	}
	if j.PostedAt != nil {
		r++
	}
	r += float64(utf8.RuneCountInString(j.Description)) / descriptionRichnessUnit
	r += float64(len(j.Keywords)) / keywordRichnessUnit
	return r
}

// Dedupe keeps one record per fingerprint: the richer one, or the later one
// on a tie. The result is sorted by fingerprint, so it does not depend on
// input order when richness differs.
func Dedupe(jobs []types.JobNormalized) []types.JobNormalized {
	best := make(map[string]types.JobNormalized, len(jobs))
	for _, j := range jobs {
		if j.Fingerprint == "" {
			j.Fingerprint = Fingerprint(j.Title, j.Company, j.Location, j.URL)
		}
		j.Richness = Richness(j)
		if current, ok := best[j.Fingerprint]; ok && !Prefer(current, j) {
			continue
		}
		best[j.Fingerprint] = j
	}

	out := make([]types.JobNormalized, 0, len(best))
	for _, j := range best {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Fingerprint < out[k].Fingerprint })
	return out
}

// Prefer reports whether incoming should replace existing under the dedupe rule
func Prefer(existing, incoming types.JobNormalized) bool {
	return Richness(incoming) >= Richness(existing)
}
