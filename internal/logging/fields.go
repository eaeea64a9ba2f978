package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"

	// Document fields.
	FieldBytes = "bytes"
	FieldSpans = "spans"
	FieldRuns  = "runs"
	FieldCaret = "caret"

	// Configuration fields.
	FieldFlavor = "flavor"
	FieldScheme = "scheme"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
