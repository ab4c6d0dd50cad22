package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeValidationError Code = "VALIDATION_ERROR"

	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Swap-analysis error codes
const (
	// Input validation
	CodeInvalidQuote  Code = "INVALID_QUOTE"
	CodeInvalidPolicy Code = "INVALID_POLICY"

	// Structural problems with the requested analysis
	CodeIncompatibleParties Code = "INCOMPATIBLE_PARTIES"

	// Post-construction invariant violations: conservation of value or the
	// improvement-for-all check. Always a logic defect, never a user-input
	// problem, so callers flag it instead of showing "no opportunity".
	CodeValidationFailed Code = "VALIDATION_FAILED"
)
