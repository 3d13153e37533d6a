// Package axd reads Analysis Studio XML (.axd) documents.
//
// A document is UTF-16 XML with a Document root (DocType="IR",
// Version="1.0") holding HeightMaps and RenderedSpectra blocks. Sample
// payloads are base64-encoded little-endian float32 arrays.
//
//	r, err := axd.Open("scan.axd")
//	if err != nil {
//	    // ErrMalformedDocument or ErrUnsupportedFileType
//	}
//	defer r.Close()
//
//	ds, warnings, err := r.Dataset(axd.Config{})
//
// Problems with a single channel or spectrum are reported as warnings and
// the item is skipped; only document-level failures return an error.
package axd

import "math"

// ImporterName identifies this reader in dataset provenance.
const ImporterName = "Analysis_Studio"

// Root element and accepted schema.
const (
	rootElement      = "Document"
	attrDocType      = "DocType"
	attrVersion      = "Version"
	supportedDocType = "IR"
	supportedVersion = "1.0"
)

// Top-level blocks.
const (
	elemHeightMaps      = "HeightMaps"
	elemRenderedSpectra = "RenderedSpectra"
	elemIRSpectrum      = "IRRenderedSpectra"
)

// Height-map channel elements and attributes.
const (
	attrLabel       = "Label"
	attrDataChannel = "DataChannel"

	elemPosition     = "Position"
	elemSize         = "Size"
	elemResolution   = "Resolution"
	elemUnits        = "Units"
	elemUnitPrefix   = "UnitPrefix"
	elemTags         = "Tags"
	elemSampleBase64 = "SampleBase64"
	elemX            = "X"
	elemY            = "Y"

	attrTagName  = "Name"
	attrTagValue = "Value"
	tagScanAngle = "ScanAngle"

	defaultZUnit = "m"
)

// Spectrum elements.
const (
	elemLabel           = "Label"
	elemDataPoints      = "DataPoints"
	elemStartWavenumber = "StartWavenumber"
	elemEndWavenumber   = "EndWavenumber"
	elemLocation        = "Location"
	elemDataChannels    = "DataChannels"
)

// maxSamples is the largest sample count whose float32 payload length
// fits in an int.
const maxSamples = math.MaxInt / 4

// micro converts the file's micrometer coordinates to meters.
const micro = 1e-6
