package cmd

// Exit codes for uncurl CLI
const (
	// ExitSuccess indicates the command completed normally
	ExitSuccess = 0

	// ExitValidationFailure indicates a data payload failed schema validation
	ExitValidationFailure = 1

	// ExitParseError indicates the input could not be parsed as a curl command
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
