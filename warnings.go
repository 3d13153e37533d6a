package anasys

import (
	"strings"

	"github.com/tsawler/anasys/axd"
)

// Warning describes a channel or spectrum that was skipped while the
// rest of the document decoded.
type Warning = axd.Warning

// Errors returned by terminal operations. Use errors.Is to test for them.
var (
	ErrMalformedDocument   = axd.ErrMalformedDocument
	ErrUnsupportedFileType = axd.ErrUnsupportedFileType
	ErrEmptyResult         = axd.ErrEmptyResult
	ErrPayloadSizeMismatch = axd.ErrPayloadSizeMismatch
)

// FormatWarnings joins warnings into a single human-readable string,
// one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
