// Package format provides file format detection for Analysis Studio files.
package format

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/tsawler/anasys/xmltree"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// AXD indicates an Analysis Studio XML (.axd) document.
	AXD
)

// Detection scores. A higher score means more confidence.
const (
	// ScoreNone means "not this format".
	ScoreNone = 0
	// ScoreName is returned when only the file name matched.
	ScoreName = 20
	// ScoreContent is returned when the name and the content matched.
	ScoreContent = 50
)

// ProbeSize is the number of leading bytes inspected by ScoreReader.
const ProbeSize = 4096

// Extension is the file name suffix of Analysis Studio documents.
const Extension = ".axd"

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case AXD:
		return "AXD"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case AXD:
		return Extension
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	if hasExtension(filename) {
		return AXD
	}
	return Unknown
}

// Score rates how likely filename (and optionally its leading bytes) is
// an Analysis Studio document.
//
// With head == nil only the name is checked and a match scores
// ScoreName. Otherwise the name must match, the window must be UTF-16,
// and a tolerant parse of the window must find an XML 1.0 declaration
// followed by a Document root element. Score never fails; anything that
// does not match scores ScoreNone.
func Score(filename string, head []byte) int {
	if !hasExtension(filename) {
		return ScoreNone
	}
	if head == nil {
		return ScoreName
	}
	if matchContent(head) {
		return ScoreContent
	}
	return ScoreNone
}

// ScoreReader reads at most ProbeSize bytes from r and scores them
// together with filename.
func ScoreReader(filename string, r io.ReaderAt) int {
	if !hasExtension(filename) {
		return ScoreNone
	}
	head := make([]byte, ProbeSize)
	n, err := r.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return ScoreNone
	}
	return Score(filename, head[:n])
}

// DetectFromMagic checks the leading bytes alone, ignoring the file name.
// It returns Unknown if the content is not a UTF-16 XML 1.0 document
// with a Document root.
func DetectFromMagic(data []byte) Format {
	if matchContent(data) {
		return AXD
	}
	return Unknown
}

func matchContent(head []byte) bool {
	if !xmltree.IsUTF16(xmltree.Sniff(head)) {
		return false
	}
	p, err := xmltree.Probe(head)
	if err != nil {
		return false
	}
	return p.Version == "1.0" && p.RootName == "Document"
}

func hasExtension(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == Extension
}
