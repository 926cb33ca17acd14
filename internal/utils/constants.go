package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

const (
	// ApplicationName is the command name shown in usage and version output.
	ApplicationName = "lsdir"

	// LoggerInitializationFailedMessageFormat reports a failure to build the zap logger.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal errors returned by the CLI.
	ApplicationExecutionFailedMessage = "lsdir failed"
)
