package axd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tsawler/anasys/model"
	"github.com/tsawler/anasys/xmltree"
)

// Reader holds one parsed .axd document.
type Reader struct {
	filename string
	doc      *xmltree.Document
}

// Open reads and parses an .axd file. The returned error wraps
// ErrMalformedDocument when the file is not well-formed XML.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	r, err := NewReader(f)
	if err != nil {
		return nil, err
	}
	r.filename = filename
	return r, nil
}

// NewReader parses a document from r.
func NewReader(r io.Reader) (*Reader, error) {
	doc, err := xmltree.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &Reader{doc: doc}, nil
}

// Close releases the parsed document.
func (r *Reader) Close() error {
	r.doc = nil
	return nil
}

// Filename returns the path passed to Open, or "" for NewReader.
func (r *Reader) Filename() string {
	return r.filename
}

// Document returns the parsed document tree.
func (r *Reader) Document() *xmltree.Document {
	return r.doc
}

// Validate checks that doc is an IR 1.0 Analysis Studio document.
func Validate(doc *xmltree.Document) error {
	if doc == nil || doc.Root == nil {
		return fmt.Errorf("%w: no root element", ErrUnsupportedFileType)
	}
	root := doc.Root
	if root.Name != rootElement {
		return fmt.Errorf("%w: root element %q", ErrUnsupportedFileType, root.Name)
	}
	docType := root.AttrValue(attrDocType)
	version := root.AttrValue(attrVersion)
	if docType != supportedDocType || version != supportedVersion {
		return fmt.Errorf("%w: DocType %q Version %q", ErrUnsupportedFileType, docType, version)
	}
	return nil
}

// Dataset validates the document and decodes every height-map channel
// and spectrum it holds. Items that fail to decode are skipped and
// reported as warnings. A document that yields nothing returns
// ErrEmptyResult together with the warnings that explain why.
func (r *Reader) Dataset(cfg Config) (*model.Dataset, []Warning, error) {
	if r.doc == nil {
		return nil, nil, errors.New("axd: reader is closed")
	}
	if err := Validate(r.doc); err != nil {
		return nil, nil, err
	}

	d := &decoder{
		cfg: cfg,
		log: cfg.logger(),
		ds:  model.NewDataset(),
		all: model.NewSpectraCollection(0, model.AllSpectraTitle),
	}

	for _, block := range r.doc.Root.Children {
		switch block.Name {
		case elemHeightMaps:
			if !cfg.SkipHeightMaps {
				d.heightMaps(block)
			}
		case elemRenderedSpectra:
			if !cfg.SkipSpectra {
				d.spectra(block)
			}
		}
	}

	if d.all.Len() > 0 {
		d.ds.AddSpectra(d.all)
	}
	if d.ds.IsEmpty() {
		return nil, d.warnings, ErrEmptyResult
	}

	d.ds.Provenance = model.Provenance{
		Filename: r.filename,
		Importer: ImporterName,
	}
	d.log.Debug("decoded document",
		"file", filepath.Base(r.filename),
		"images", len(d.ds.Images),
		"spectra", d.all.Len(),
		"warnings", len(d.warnings))
	return d.ds, d.warnings, nil
}

// decoder carries state across the blocks of one document so that
// numbering continues from one HeightMaps or RenderedSpectra block to
// the next.
type decoder struct {
	cfg      Config
	log      *slog.Logger
	ds       *model.Dataset
	all      *model.SpectraCollection
	images   int
	spectrum int
	warnings []Warning
}

func (d *decoder) warn(source string, err error) {
	d.log.Warn("skipping item", "source", source, "error", err)
	d.warnings = append(d.warnings, Warning{Source: source, Err: err})
}

// heightMaps decodes every element child of a HeightMaps block. Each
// child takes the next index, whether or not it decodes.
func (d *decoder) heightMaps(block *xmltree.Node) {
	for _, n := range block.Children {
		d.images++
		c := ParseChannel(n, d.images)

		images, err := c.Decode(d.cfg.Interpolation)
		if err != nil {
			d.warn(c.source(), err)
			continue
		}
		if len(images) == 0 {
			d.log.Debug("empty channel", "index", c.Index, "label", c.Label)
			continue
		}
		for _, img := range images {
			d.ds.AddImage(img)
		}
		d.log.Debug("decoded channel",
			"index", c.Index,
			"label", c.Label,
			"xres", c.ResX,
			"yres", c.ResY,
			"angle", c.ScanAngle)
	}
}

// spectra decodes the IRRenderedSpectra children of a RenderedSpectra
// block. Other children are ignored and take no index.
func (d *decoder) spectra(block *xmltree.Node) {
	for _, n := range block.ChildrenNamed(elemIRSpectrum) {
		d.spectrum++
		s := ParseSpectrum(n, d.spectrum)

		sp, err := s.Decode()
		if err != nil {
			d.warn(s.source(), err)
			continue
		}
		if sp == nil {
			d.log.Debug("empty spectrum", "index", s.Index, "label", s.Label)
			continue
		}
		d.ds.AddSpectra(s.Collection(sp))
		d.all.Add(sp)
		d.log.Debug("decoded spectrum",
			"index", s.Index,
			"label", s.Label,
			"points", s.DataPoints)
	}
}

// HeightMaps decodes only the height-map channels of the document.
func (r *Reader) HeightMaps(cfg Config) ([]*model.Image, []Warning, error) {
	cfg.SkipSpectra = true
	ds, warnings, err := r.Dataset(cfg)
	if err != nil {
		return nil, warnings, err
	}
	return ds.Images, warnings, nil
}

// Spectra decodes only the spectra of the document, aggregate first.
func (r *Reader) Spectra(cfg Config) ([]*model.SpectraCollection, []Warning, error) {
	cfg.SkipHeightMaps = true
	ds, warnings, err := r.Dataset(cfg)
	if err != nil {
		return nil, warnings, err
	}
	return ds.Spectra, warnings, nil
}
