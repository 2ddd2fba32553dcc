// Package fetch - platform.go provides job board detection and board-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS platform
	PlatformWorkday Platform = "workday"
	// PlatformLinkedIn is the LinkedIn jobs site
	PlatformLinkedIn Platform = "linkedin"
	// PlatformIndeed is the Indeed jobs site
	PlatformIndeed Platform = "indeed"
	// PlatformKariyer is the kariyer.net Turkish job board
	PlatformKariyer Platform = "kariyer"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// hostPlatforms maps host fragments to platforms, checked in order.
var hostPlatforms = []struct {
	fragment string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"linkedin.com", PlatformLinkedIn},
	{"indeed.", PlatformIndeed},
	{"kariyer.net", PlatformKariyer},
}

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	if host == "" {
		return PlatformUnknown
	}
	for _, hp := range hostPlatforms {
		if strings.Contains(host, hp.fragment) {
			return hp.platform
		}
	}
	return PlatformUnknown
}

// DetectPlatformFromSite maps a free-form site name ("LinkedIn", "greenhouse") to a platform.
func DetectPlatformFromSite(site string) Platform {
	site = strings.ToLower(strings.TrimSpace(site))
	if site == "" {
		return PlatformUnknown
	}
	for _, hp := range hostPlatforms {
		name := string(hp.platform)
		if site == name || strings.Contains(site, strings.TrimSuffix(hp.fragment, ".")) {
			return hp.platform
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{
			".job__description.body",    // Primary Greenhouse selector
			".job__description",         // Fallback
			".job-description__content", // Alternative
			"#content",                  // Generic fallback
			".job-post-container",       // Container level
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".job-description",
		}
	case PlatformLinkedIn:
		return []string{
			".show-more-less-html__markup",
			".description__text",
			".jobs-description__content",
		}
	case PlatformIndeed:
		return []string{
			"#jobDescriptionText",
			".jobsearch-JobComponent-description",
		}
	case PlatformKariyer:
		return []string{
			".job-detail-content",
			".qualifications",
			"main",
		}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	// Common noise selectors for all platforms
	common := []string{
		// Application forms
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		"[data-testid='application-form']",

		// EEO and legal
		".voluntary-disclosure",
		".eeo-statement",
		".eeo-section",
		".legal-disclosure",
		".self-identification",

		// Social and share buttons
		".social-share",
		".share-buttons",
		".social-links",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			"#usa_self_id_section",
		)
	case PlatformLever:
		return append(common,
			".apply-section",
			".posting-apply",
		)
	case PlatformWorkday:
		return append(common,
			"[data-automation-id='applyButton']",
			".application-section",
		)
	case PlatformLinkedIn:
		return append(common,
			".top-card-layout__cta-container",
			".similar-jobs",
		)
	default:
		return common
	}
}
