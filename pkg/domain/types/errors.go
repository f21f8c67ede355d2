package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify inspection failures without depending on the
// container libraries' own error types or messages.
var (
	// TagNotFound marks errors caused by a missing or inaccessible input path.
	TagNotFound = goerr.NewTag("not_found")
	// TagUnsupportedFormat marks inputs that matched no known container format.
	TagUnsupportedFormat = goerr.NewTag("unsupported_format")
	// TagCorruptContainer marks inputs whose format was detected but whose
	// structure could not be parsed.
	TagCorruptContainer = goerr.NewTag("corrupt_container")
	// TagEntryIO marks per-entry read or write failures. These never abort a run.
	TagEntryIO = goerr.NewTag("entry_io")
)

// IsNotFound reports whether err is classified as a missing input path.
func IsNotFound(err error) bool {
	return goerr.HasTag(err, TagNotFound)
}

// IsUnsupportedFormat reports whether err is classified as an unrecognized format.
func IsUnsupportedFormat(err error) bool {
	return goerr.HasTag(err, TagUnsupportedFormat)
}

// IsCorruptContainer reports whether err is classified as an unreadable container.
func IsCorruptContainer(err error) bool {
	return goerr.HasTag(err, TagCorruptContainer)
}

// IsEntryIO reports whether err is classified as a per-entry I/O failure.
func IsEntryIO(err error) bool {
	return goerr.HasTag(err, TagEntryIO)
}
