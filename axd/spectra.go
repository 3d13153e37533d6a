package axd

import (
	"fmt"

	"github.com/tsawler/anasys/internal/filters"
	"github.com/tsawler/anasys/model"
	"github.com/tsawler/anasys/xmltree"
)

// SpectrumElement is one IRRenderedSpectra element after extraction.
type SpectrumElement struct {
	Index       int
	Label       string
	DataChannel string
	DataPoints  int

	// Wavenumbers in cm⁻¹.
	Start, End float64

	// Location in micrometers.
	LocX, LocY float64

	Payload string
}

type spectrumHandler func(s *SpectrumElement, n *xmltree.Node)

var spectrumHandlers = map[string]spectrumHandler{
	elemLabel:           func(s *SpectrumElement, n *xmltree.Node) { s.Label = n.Text },
	elemDataPoints:      func(s *SpectrumElement, n *xmltree.Node) { s.DataPoints = parseInt(n.Text) },
	elemStartWavenumber: func(s *SpectrumElement, n *xmltree.Node) { s.Start = parseFloat(n.Text) },
	elemEndWavenumber:   func(s *SpectrumElement, n *xmltree.Node) { s.End = parseFloat(n.Text) },
	elemLocation:        (*SpectrumElement).readLocation,
	elemDataChannels:    (*SpectrumElement).readDataChannels,
}

// ParseSpectrum extracts the fields of an IRRenderedSpectra element.
// Unknown children are ignored.
func ParseSpectrum(n *xmltree.Node, index int) *SpectrumElement {
	s := &SpectrumElement{Index: index}
	for _, child := range n.Children {
		if h, ok := spectrumHandlers[child.Name]; ok {
			h(s, child)
		}
	}
	return s
}

func (s *SpectrumElement) readLocation(n *xmltree.Node) {
	for _, sub := range n.Children {
		switch sub.Name {
		case elemX:
			s.LocX = parseFloat(sub.Text)
		case elemY:
			s.LocY = parseFloat(sub.Text)
		}
	}
}

// readDataChannels takes the y label from the attribute and the first
// sample payload child.
func (s *SpectrumElement) readDataChannels(n *xmltree.Node) {
	s.DataChannel = n.AttrValue(attrDataChannel)
	if payload := n.Child(elemSampleBase64); payload != nil {
		s.Payload = payload.Text
	}
}

func (s *SpectrumElement) source() string {
	return fmt.Sprintf("Spectrum %d %q", s.Index, s.Label)
}

// AxisSpan returns the total wavenumber span of n samples from start to
// end such that consecutive samples are (end-start)/(n-1) apart. A
// single sample spans end-start.
func AxisSpan(start, end float64, n int) float64 {
	if n <= 1 {
		return end - start
	}
	return (end - start) * (1 + 1/float64(n-1))
}

// Decode decodes the payload into a calibrated spectrum. A spectrum with
// fewer than one data point returns nil and no error.
func (s *SpectrumElement) Decode() (*model.Spectrum, error) {
	if s.DataPoints < 1 {
		return nil, nil
	}
	if s.DataPoints > maxSamples {
		return nil, fmt.Errorf("%w: %d data points out of range", ErrPayloadSizeMismatch, s.DataPoints)
	}

	raw, err := filters.Base64DecodeString(s.Payload)
	if err != nil {
		return nil, fmt.Errorf("sample payload: %w", err)
	}
	if len(raw) != 4*s.DataPoints {
		return nil, payloadMismatch(len(raw), s.DataPoints)
	}
	data, err := filters.DecodeFloat32LE(raw, s.DataPoints)
	if err != nil {
		return nil, fmt.Errorf("sample payload: %w", err)
	}

	return &model.Spectrum{
		Title:  s.Label,
		YLabel: s.DataChannel,
		X:      s.LocX * micro,
		Y:      s.LocY * micro,
		Offset: s.Start,
		Real:   AxisSpan(s.Start, s.End, s.DataPoints),
		Data:   data,
	}, nil
}

// Collection wraps a decoded spectrum in its own indexed collection.
func (s *SpectrumElement) Collection(sp *model.Spectrum) *model.SpectraCollection {
	c := model.NewSpectraCollection(s.Index, s.Label)
	c.YLabel = s.DataChannel
	c.Add(sp)
	return c
}
