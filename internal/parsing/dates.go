package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/jonathan/job-ats/internal/types"
)

// freeFormYearWindow bounds years accepted from free-form dates around now
const freeFormYearWindow = 5

const numericDate = `(\d{1,2})[./-](\d{1,2})[./-](\d{4})`

var (
	deadlineLabel = `(?:application deadline|deadline|apply by|apply before|closing date|son başvuru(?: tarihi)?)`
	postedLabel   = `(?:posted on|date posted|publication date|published on|yayın tarihi|ilan tarihi)`

	deadlineNumericRe  = regexp.MustCompile(`(?i)` + deadlineLabel + `\s*:?\s*` + numericDate)
	postedNumericRe    = regexp.MustCompile(`(?i)` + postedLabel + `\s*:?\s*` + numericDate)
	deadlineFreeFormRe = regexp.MustCompile(`(?im)` + deadlineLabel + `\s*:?\s*([^\n]+)$`)
	postedFreeFormRe   = regexp.MustCompile(`(?im)` + postedLabel + `\s*:?\s*([^\n]+)$`)

	postedAgoRe   = regexp.MustCompile(`(?i)(?:posted|published|reposted)\s+(\d+)\+?\s+(hour|day|week|month)s?\s+ago`)
	postedDayRe   = regexp.MustCompile(`(?i)(?:posted|published|reposted)\s+(today|yesterday|just now)`)
	postedAgoTRRe = regexp.MustCompile(`(\d+)\s+(saat|gün|hafta|ay)\s+önce`)
	postedDayTRRe = regexp.MustCompile(`(?i)(bugün|dün)\s+yayınlan`)
)

// ExtractPostedAt finds the posting date: a labeled numeric date, a labeled
// free-form date, then a relative "posted N days ago" resolved against now.
func ExtractPostedAt(text string, now time.Time) *types.FieldConfidence[time.Time] {
	if t, ok := findNumericDate(postedNumericRe, text); ok {
		return &types.FieldConfidence[time.Time]{Value: t, Confidence: ConfDateAbsolute}
	}
	if t, ok := findFreeFormDate(postedFreeFormRe, text, now); ok {
		return &types.FieldConfidence[time.Time]{Value: t, Confidence: ConfDateFreeForm}
	}
	if t, ok := findRelativeDate(text, now); ok {
		return &types.FieldConfidence[time.Time]{Value: t, Confidence: ConfDateRelative}
	}
	return nil
}

// ExtractDeadline finds the application deadline from a labeled date
func ExtractDeadline(text string, now time.Time) *types.FieldConfidence[time.Time] {
	if t, ok := findNumericDate(deadlineNumericRe, text); ok {
		return &types.FieldConfidence[time.Time]{Value: t, Confidence: ConfDateAbsolute}
	}
	if t, ok := findFreeFormDate(deadlineFreeFormRe, text, now); ok {
		return &types.FieldConfidence[time.Time]{Value: t, Confidence: ConfDateFreeForm}
	}
	return nil
}

// findNumericDate reads DD.MM.YYYY after a label, retrying as MM.DD.YYYY
// when the first reading is not a valid date
func findNumericDate(re *regexp.Regexp, text string) (time.Time, bool) {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if t, ok := validDate(year, second, first); ok {
			return t, true
		}
		if t, ok := validDate(year, first, second); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// validDate builds a UTC date, rejecting overflow such as 31.02
func validDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

func findFreeFormDate(re *regexp.Regexp, text string, now time.Time) (time.Time, bool) {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		value := strings.TrimSpace(strings.TrimRight(m[1], ".;,!"))
		if value == "" || !strings.ContainsAny(value, "0123456789") {
			continue
		}
		t, err := dateparse.ParseIn(value, time.UTC)
		if err != nil {
			continue
		}
		if diff := t.Year() - now.Year(); diff < -freeFormYearWindow || diff > freeFormYearWindow {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}

// ParseHintDate reads a structured-data date (ISO 8601 or similar)
func ParseHintDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func findRelativeDate(text string, now time.Time) (time.Time, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if m := postedAgoRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return shiftDate(today, now, n, strings.ToLower(m[2])), true
	}
	if m := postedDayRe.FindStringSubmatch(text); m != nil {
		if strings.EqualFold(m[1], "yesterday") {
			return today.AddDate(0, 0, -1), true
		}
		return today, true
	}
	if m := postedAgoTRRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		unit := map[string]string{"saat": "hour", "gün": "day", "hafta": "week", "ay": "month"}[m[2]]
		return shiftDate(today, now, n, unit), true
	}
	if m := postedDayTRRe.FindStringSubmatch(text); m != nil {
		if strings.EqualFold(m[1], "dün") {
			return today.AddDate(0, 0, -1), true
		}
		return today, true
	}
	return time.Time{}, false
}

func shiftDate(today, now time.Time, n int, unit string) time.Time {
	switch unit {
	case "hour":
		return now.Add(-time.Duration(n) * time.Hour)
	case "week":
		return today.AddDate(0, 0, -7*n)
	case "month":
		return today.AddDate(0, -n, 0)
	default:
		return today.AddDate(0, 0, -n)
	}
}
