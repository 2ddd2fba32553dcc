package parsing

// Confidence constants for every extractor. A confidence is a heuristic belief
// strength in [0,1], not a calibrated probability.
const (
	// ConfSeedHint is used for adapter hints that carry no confidence of their own
	ConfSeedHint = 0.9

	ConfLabeledField    = 0.8
	ConfLabeledLocation = 0.7
	ConfTitleFallback   = 0.6
	ConfCompanyAtTitle  = 0.5

	ConfRecruiterEmail    = 0.8
	ConfRecruiterNameOnly = 0.3

	ConfSalaryExplicitPeriod = 0.8
	ConfSalaryInferredPeriod = 0.6

	ConfDateAbsolute = 0.8
	ConfDateFreeForm = 0.7
	ConfDateRelative = 0.6

	ConfKeywordChain   = 0.7
	ConfSeniorityTitle = 0.8
	ConfSentinel       = 0.0

	// ConfNeutralPrior is the overall confidence when no identity field was extracted
	ConfNeutralPrior = 0.4
	// ConfGuardFailure is the overall confidence of a parse that panicked
	ConfGuardFailure = 0.0
)
