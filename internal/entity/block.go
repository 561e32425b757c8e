package entity

import "math"

// BoundingBox is a rectangle normalized to the source image: x, y,
// width and height are each in [0,1].
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether every coordinate is finite and in range.
func (b BoundingBox) Valid() bool {
	for _, v := range []float64{b.X, b.Y, b.Width, b.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Center returns the box center in normalized image coordinates.
func (b BoundingBox) Center() (x, y float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// TextBlock is one OCR-recognized text fragment with position, size
// and confidence metadata. Blocks are read-only inputs; the engine
// never mutates them.
type TextBlock struct {
	Text        string       `json:"text"`
	Confidence  float64      `json:"confidence"`
	BoundingBox *BoundingBox `json:"bounding_box,omitempty"`
	FontSize    float64      `json:"font_size,omitempty"`
	Source      string       `json:"source,omitempty"`
}
