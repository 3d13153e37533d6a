package model

// WavenumberLabel is the x-axis label of every decoded spectrum.
const WavenumberLabel = "Wavenumber (cm⁻¹)"

// AllSpectraTitle is the title of the document-wide aggregate collection.
const AllSpectraTitle = "All Spectra"

// Spectrum is one point spectrum with a linear wavenumber axis.
type Spectrum struct {
	Title  string
	YLabel string

	// X and Y locate the spectrum in meters.
	X, Y float64

	// Offset is the wavenumber of the first sample and Real the total
	// axis span, so the sample spacing is Real / len(Data).
	Offset float64
	Real   float64

	Data []float64
}

// Len returns the number of samples
func (s *Spectrum) Len() int {
	return len(s.Data)
}

// Step returns the wavenumber spacing between samples
func (s *Spectrum) Step() float64 {
	if len(s.Data) == 0 {
		return 0
	}
	return s.Real / float64(len(s.Data))
}

// XValues returns the wavenumber of every sample
func (s *Spectrum) XValues() []float64 {
	xs := make([]float64, len(s.Data))
	step := s.Step()
	for i := range xs {
		xs[i] = s.Offset + float64(i)*step
	}
	return xs
}

// SpectraCollection groups spectra sharing one spatial calibration.
type SpectraCollection struct {
	Index  int
	Title  string
	XLabel string
	YLabel string
	XYUnit string

	Spectra []*Spectrum
}

// NewSpectraCollection creates an empty collection with the standard
// wavenumber axis label and meter xy unit.
func NewSpectraCollection(index int, title string) *SpectraCollection {
	return &SpectraCollection{
		Index:  index,
		Title:  title,
		XLabel: WavenumberLabel,
		XYUnit: "m",
	}
}

// Add appends a spectrum
func (c *SpectraCollection) Add(s *Spectrum) {
	c.Spectra = append(c.Spectra, s)
}

// Len returns the number of spectra
func (c *SpectraCollection) Len() int {
	return len(c.Spectra)
}
