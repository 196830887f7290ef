package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when an argument or configuration value is invalid.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned when a feature or value is not supported.
	Unsupported = ErrorKind("Unsupported")

	// Timeout is returned when an operation did not finish in time.
	Timeout = ErrorKind("Timeout")

	// InternalError is returned when something unexpected happened inside the indexer.
	InternalError = ErrorKind("Internal Error")

	// ParsingError is returned when an envelope or an instruction payload can't be decoded.
	// The message is skipped and the stream continues.
	ParsingError = ErrorKind("Parsing Error")

	// ChangeLogEventMalformed is returned when a tree update is structurally invalid.
	ChangeLogEventMalformed = ErrorKind("Change Log Event Malformed")

	// NotImplemented is returned for recognized instructions that have no handler.
	NotImplemented = ErrorKind("Not Implemented")

	// DatabaseError is returned when a database connection or transaction fails.
	// Unlike the per-message kinds above, it stops the stream loop.
	DatabaseError = ErrorKind("Database Error")

	// ConfigurationError is returned on startup when configuration is unusable.
	ConfigurationError = ErrorKind("Configuration Error")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
