package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	// General validation
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeValidationError: "Validation error",

	// Configuration
	CodeConfigurationError: "Configuration error",

	// System errors
	CodeInternalError: "Internal error",
	CodeUnknownError:  "An unknown error occurred",

	// Swap analysis
	CodeInvalidQuote:        "Invalid rate quote",
	CodeInvalidPolicy:       "Invalid allocation policy",
	CodeIncompatibleParties: "Parties want the same exposure, no swap is possible",
	CodeValidationFailed:    "Post-construction validation failed",
}
