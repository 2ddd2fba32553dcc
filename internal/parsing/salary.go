package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/job-ats/internal/types"
)

const (
	currencyPattern  = `(?:[$€£₺]|\b(?:USD|EUR|GBP|TRY|TL|usd|eur|gbp|tl)\b)`
	// after an amount "50.000TL" has no word boundary before the code
	trailingCurrency = `(?:[$€£₺]|(?:USD|EUR|GBP|TRY|TL|usd|eur|gbp|tl)\b)`
	amountPattern    = `\d{1,3}(?:[,.']\d{3})+(?:[.,]\d{1,2})?|\d+(?:[.,]\d{1,2})?`
	periodWords      = `(?i:years?|yr|annum|months?|mo|weeks?|wk|days?|hours?|hr|h|yıl|ay|hafta|gün|saat)`
	periodAdverbs    = `(?i:annually|annual|yearly|p\.a\.|monthly|weekly|daily|hourly|yıllık|aylık|haftalık|günlük|saatlik)`
)

// magnitudeRe matches a magnitude word after an amount: "$40 million" is funding, not pay
var magnitudeRe = regexp.MustCompile(`^\s+(?i:millions?|billions?|trillions?|mn|bn|mio|milyon|milyar)\b`)

// salaryRe matches an optional currency, an amount with optional k, an
// optional range, and an optional period introduced by "/", "per", "a" or
// written as an adverb ("annually", "aylık").
var salaryRe = regexp.MustCompile(
	`(?P<cur1>` + currencyPattern + `)?\s*(?P<min>` + amountPattern + `)(?P<k1>[kK])?` +
		`(?:\s*(?P<cur2>` + trailingCurrency + `))?` +
		`(?:\s*(?:-|–|—|(?i:to)|ile)\s*(?P<cur3>` + currencyPattern + `)?\s*(?P<max>` + amountPattern + `)(?P<k2>[kK])?` +
		`(?:\s*(?P<cur4>` + trailingCurrency + `))?)?` +
		`(?:\s*(?:/|(?i:per|a|an|each|başına)\s)\s*(?P<per>` + periodWords + `)\b|\s+(?P<adv>` + periodAdverbs + `))?`,
)

var currencySymbols = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"₺": "TRY",
}

var currencyCodes = map[string]string{
	"USD": "USD",
	"EUR": "EUR",
	"GBP": "GBP",
	"TRY": "TRY",
	"TL":  "TRY",
}

// salaryPeriods is keyed by folded period tokens
var salaryPeriods = foldKeys(map[string]string{
	"year": "y", "years": "y", "yr": "y", "annum": "y", "annually": "y", "annual": "y", "yearly": "y", "p.a.": "y", "yıl": "y", "yıllık": "y",
	"month": "m", "months": "m", "mo": "m", "monthly": "m", "ay": "m", "aylık": "m",
	"week": "w", "weeks": "w", "wk": "w", "weekly": "w", "hafta": "w", "haftalık": "w",
	"day": "d", "days": "d", "daily": "d", "gün": "d", "günlük": "d",
	"hour": "h", "hours": "h", "hr": "h", "h": "h", "hourly": "h", "saat": "h", "saatlik": "h",
})

func foldKeys(m map[string]string) map[string]string {
	folded := make(map[string]string, len(m))
	for k, v := range m {
		folded[fold(k)] = v
	}
	return folded
}

// ParseSalary returns the first salary-like amount or range in text.
// An amount needs currency, "k" or period evidence to count as a salary.
// The k suffix multiplies only the number it is attached to.
func ParseSalary(text string) *types.SalaryRange {
	salary, _ := parseSalary(text)
	return salary
}

// ExtractSalary wraps ParseSalary with a confidence: higher when the period
// was stated than when it was inferred from the amount.
func ExtractSalary(text string) *types.FieldConfidence[types.SalaryRange] {
	salary, explicitPeriod := parseSalary(text)
	if salary == nil {
		return nil
	}
	confidence := ConfSalaryInferredPeriod
	if explicitPeriod {
		confidence = ConfSalaryExplicitPeriod
	}
	return &types.FieldConfidence[types.SalaryRange]{Value: *salary, Confidence: confidence}
}

func parseSalary(text string) (*types.SalaryRange, bool) {
	names := salaryRe.SubexpNames()
	for _, loc := range salaryRe.FindAllStringSubmatchIndex(text, -1) {
		groups := make(map[string]string, len(names))
		ends := make(map[string]int, len(names))
		for i, name := range names {
			if name == "" || loc[2*i] < 0 {
				continue
			}
			groups[name] = strings.TrimSpace(text[loc[2*i]:loc[2*i+1]])
			ends[name] = loc[2*i+1]
		}

		// "10km" is not "10k" and "$5M" is not $5
		if amountRunsOn(text, groups, ends, "min", "k1", "cur2") || amountRunsOn(text, groups, ends, "max", "k2", "cur4") {
			continue
		}
		if followedByMagnitude(text, groups, ends, "min", "k1") || followedByMagnitude(text, groups, ends, "max", "k2") {
			continue
		}

		period := groups["per"]
		if period == "" {
			period = groups["adv"]
		}
		currency := resolveCurrency(groups["cur1"], groups["cur2"], groups["cur3"], groups["cur4"])
		hasK := groups["k1"] != "" || groups["k2"] != ""
		if currency == "" && !hasK && period == "" {
			continue
		}

		minValue, ok := parseAmount(groups["min"], groups["k1"] != "")
		if !ok || minValue == 0 {
			continue
		}
		maxValue := minValue
		if groups["max"] != "" {
			if v, ok := parseAmount(groups["max"], groups["k2"] != ""); ok && v > 0 {
				maxValue = v
			}
		}
		if minValue > maxValue {
			minValue, maxValue = maxValue, minValue
		}

		salary := &types.SalaryRange{Min: minValue, Max: maxValue, Currency: currency}
		if code, ok := salaryPeriods[fold(period)]; ok {
			salary.Period = code
			return salary, true
		}
		salary.Period = inferPeriod(maxValue)
		return salary, false
	}
	return nil, false
}

// amountRunsOn reports whether an amount (or its k suffix) is directly
// followed by a letter that is not a currency code
func amountRunsOn(text string, groups map[string]string, ends map[string]int, amount, k, currency string) bool {
	if groups[currency] != "" {
		return false
	}
	name := amount
	if groups[k] != "" {
		name = k
	}
	end, ok := ends[name]
	if !ok || end >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return unicode.IsLetter(r)
}

// followedByMagnitude reports whether an amount is followed by a word such as "million"
func followedByMagnitude(text string, groups map[string]string, ends map[string]int, amount, k string) bool {
	name := amount
	if groups[k] != "" {
		name = k
	}
	end, ok := ends[name]
	if !ok {
		return false
	}
	return magnitudeRe.MatchString(text[end:])
}

// resolveCurrency prefers an explicit code over a symbol
func resolveCurrency(candidates ...string) string {
	for _, c := range candidates {
		if code, ok := currencyCodes[strings.ToUpper(c)]; ok {
			return code
		}
	}
	for _, c := range candidates {
		if code, ok := currencySymbols[c]; ok {
			return code
		}
	}
	return ""
}

// inferPeriod guesses a pay period from the magnitude of the amount
func inferPeriod(amount float64) string {
	switch {
	case amount < 500:
		return "h"
	case amount < 20000:
		return "m"
	default:
		return "y"
	}
}

// parseAmount reads "60,000", "60.000", "1'200", "45.50" or "60" (with k).
// A final separator followed by one or two digits is a decimal point; any
// other separator groups thousands.
func parseAmount(s string, k bool) (float64, bool) {
	if s == "" {
		return 0, false
	}
	lastSep := strings.LastIndexAny(s, ",.'")
	var normalized string
	if lastSep >= 0 && len(s)-lastSep-1 <= 2 {
		intPart := strings.NewReplacer(",", "", ".", "", "'", "").Replace(s[:lastSep])
		normalized = intPart + "." + s[lastSep+1:]
	} else {
		normalized = strings.NewReplacer(",", "", ".", "", "'", "").Replace(s)
	}

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}
	if k {
		value *= 1000
	}
	return value, true
}
