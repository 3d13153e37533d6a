package axd

import (
	"fmt"
	"math"

	"github.com/tsawler/anasys/internal/filters"
	"github.com/tsawler/anasys/model"
	"github.com/tsawler/anasys/raster"
	"github.com/tsawler/anasys/xmltree"
)

// Channel is one HeightMap element after extraction, before decoding.
type Channel struct {
	Index       int
	Label       string
	DataChannel string

	// Position and Size are in micrometers.
	PosX, PosY     float64
	RangeX, RangeY float64
	ResX, ResY     int

	ZUnit       string
	ZMultiplier float64

	// ScanAngle is in degrees, normalized to (-180, 180].
	ScanAngle float64

	Payload string
	Meta    *model.Metadata
}

type channelHandler func(c *Channel, n *xmltree.Node)

// channelHandlers covers the structurally special children of a channel.
// Everything else goes through the metadata flattener.
var channelHandlers = map[string]channelHandler{
	elemPosition:     (*Channel).readPosition,
	elemSize:         (*Channel).readSize,
	elemResolution:   (*Channel).readResolution,
	elemUnits:        (*Channel).readUnits,
	elemUnitPrefix:   (*Channel).readUnitPrefix,
	elemTags:         (*Channel).readTags,
	elemSampleBase64: (*Channel).readPayload,
}

// ParseChannel extracts geometry, units, tags, payload and metadata from
// a HeightMap element. It never fails: unparseable numbers read as 0.
func ParseChannel(n *xmltree.Node, index int) *Channel {
	c := &Channel{
		Index:       index,
		Label:       n.AttrValue(attrLabel),
		ZUnit:       defaultZUnit,
		ZMultiplier: 1,
		Meta:        model.NewMetadata(),
	}
	if dc, ok := n.Attr(attrDataChannel); ok {
		c.DataChannel = dc
		c.Meta.Set(attrDataChannel, dc)
	}

	for _, child := range n.Children {
		if h, ok := channelHandlers[child.Name]; ok {
			h(c, child)
			continue
		}
		flattenElement(c.Meta, child)
	}
	return c
}

// readXY walks the X/Y children of a geometry element, recording every
// child as "<parent>_<child>" metadata.
func (c *Channel) readXY(n *xmltree.Node, set func(axis, text string)) {
	for _, sub := range n.Children {
		set(sub.Name, sub.Text)
		c.Meta.Set(n.Name+"_"+sub.Name, sub.Text)
	}
}

func (c *Channel) readPosition(n *xmltree.Node) {
	c.readXY(n, func(axis, text string) {
		switch axis {
		case elemX:
			c.PosX = parseFloat(text)
		case elemY:
			c.PosY = parseFloat(text)
		}
	})
}

func (c *Channel) readSize(n *xmltree.Node) {
	c.readXY(n, func(axis, text string) {
		switch axis {
		case elemX:
			c.RangeX = parseFloat(text)
		case elemY:
			c.RangeY = parseFloat(text)
		}
	})
}

func (c *Channel) readResolution(n *xmltree.Node) {
	c.readXY(n, func(axis, text string) {
		switch axis {
		case elemX:
			c.ResX = parseInt(text)
		case elemY:
			c.ResY = parseInt(text)
		}
	})
}

func (c *Channel) readUnits(n *xmltree.Node) {
	c.ZUnit = n.Text
	c.Meta.Set(elemUnits, n.Text)
}

func (c *Channel) readUnitPrefix(n *xmltree.Node) {
	c.ZMultiplier = PrefixMultiplier(n.Text)
}

func (c *Channel) readTags(n *xmltree.Node) {
	for _, tag := range n.Children {
		name, ok := tag.Attr(attrTagName)
		if !ok {
			continue
		}
		value := tag.AttrValue(attrTagValue)
		if name == tagScanAngle {
			c.ScanAngle = ParseScanAngle(value)
		}
		c.Meta.Set(name, value)
	}
}

func (c *Channel) readPayload(n *xmltree.Node) {
	c.Payload = n.Text
}

// Pixels returns the declared sample count. ok is false when the
// resolution is too large for any payload to hold.
func (c *Channel) Pixels() (n int, ok bool) {
	if c.ResX < 1 || c.ResY < 1 {
		return 0, true
	}
	if c.ResY > maxSamples/c.ResX {
		return 0, false
	}
	return c.ResX * c.ResY, true
}

// source names the channel in warnings.
func (c *Channel) source() string {
	return fmt.Sprintf("HeightMap %d %q", c.Index, c.Label)
}

// Decode decodes the payload, applies the unit prefix and orients the
// raster for the scan angle. It returns one image for axis-aligned scans
// and two for oblique ones: the flipped original titled "(Offset)" under
// Index, and the rotated expanded-canvas image titled "(Rotated)" under
// model.ObliqueIndexOffset+Index.
func (c *Channel) Decode(interp raster.Interpolation) ([]*model.Image, error) {
	count, ok := c.Pixels()
	if !ok {
		return nil, fmt.Errorf("%w: resolution %dx%d out of range", ErrPayloadSizeMismatch, c.ResX, c.ResY)
	}
	if count < 1 {
		return nil, nil
	}

	raw, err := filters.Base64DecodeString(c.Payload)
	if err != nil {
		return nil, fmt.Errorf("sample payload: %w", err)
	}
	if len(raw) != 4*count {
		return nil, payloadMismatch(len(raw), count)
	}
	data, err := filters.DecodeFloat32LE(raw, count)
	if err != nil {
		return nil, fmt.Errorf("sample payload: %w", err)
	}

	field := model.NewRaster(c.ResX, c.ResY, c.RangeX*micro, c.RangeY*micro)
	field.ZUnit = c.ZUnit
	field.Data = data
	field.Multiply(c.ZMultiplier)

	return c.orient(field, interp)
}

func (c *Channel) orient(field *model.Raster, interp raster.Interpolation) ([]*model.Image, error) {
	var width, height float64

	switch c.ScanAngle {
	case 0:
		raster.FlipVertical(field)
		width, height = c.RangeX, c.RangeY
	case 180:
		raster.FlipHorizontal(field)
		width, height = c.RangeX, c.RangeY
	case 90:
		field = raster.Rotate90(field, false)
		raster.FlipVertical(field)
		width, height = c.RangeY, c.RangeX
	case -90:
		field = raster.Rotate90(field, true)
		raster.FlipVertical(field)
		width, height = c.RangeY, c.RangeX
	default:
		return c.oblique(field, interp)
	}

	field.XOffset = (c.PosX - width/2) * micro
	field.YOffset = (c.PosY - height/2) * micro
	return []*model.Image{{
		Index:  c.Index,
		Title:  c.Label,
		Raster: field,
		Meta:   c.Meta,
	}}, nil
}

// oblique rotates the raw field and then flips the result, matching the
// quarter-turn branches. The "(Offset)" image is the field flipped only.
func (c *Channel) oblique(field *model.Raster, interp raster.Interpolation) ([]*model.Image, error) {
	rotated, err := raster.Rotate(field, c.ScanAngle*math.Pi/180, interp)
	if err != nil {
		return nil, fmt.Errorf("rotating by %g degrees: %w", c.ScanAngle, err)
	}
	raster.FlipVertical(rotated)
	raster.FlipVertical(field)

	field.XOffset, field.YOffset = 1, 1
	rotated.XOffset = c.PosX*micro - rotated.XReal/2
	rotated.YOffset = c.PosY*micro - rotated.YReal/2

	return []*model.Image{
		{
			Index:  c.Index,
			Title:  c.Label + " (Offset)",
			Raster: field,
			Meta:   c.Meta,
		},
		{
			Index:  model.ObliqueIndexOffset + c.Index,
			Title:  c.Label + " (Rotated)",
			Raster: rotated,
			Meta:   c.Meta,
		},
	}, nil
}
