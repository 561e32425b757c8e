// Package ingest decodes OCR backend payloads into text blocks. The
// engine never fails on a malformed block; it fails only when the
// document as a whole is not an array of blocks.
package ingest

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/kyo-hirano/receipt-fields/internal/common"
	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

type wireBox struct {
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

type wireBlock struct {
	Text        *string  `json:"text"`
	Confidence  *float64 `json:"confidence"`
	BoundingBox *wireBox `json:"bounding_box"`
	FontSize    *float64 `json:"font_size"`
	Source      *string  `json:"source"`
}

// DecodeBlocks leniently decodes an OCR payload. Per-block defects
// (missing or empty text, non-finite numbers, malformed boxes) drop
// the block silently; only a top-level document that is not an array
// is an error.
func DecodeBlocks(data []byte) ([]entity.TextBlock, error) {
	var raw []json.RawMessage
	// a JSON null unmarshals into a nil slice without error; it is as
	// illegal a document as a non-array
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil, common.NewAppError("INGEST_ERROR", "payload is not an array of text blocks", common.ErrInvalidInput)
	}
	out := make([]entity.TextBlock, 0, len(raw))
	for _, msg := range raw {
		var w wireBlock
		if err := json.Unmarshal(msg, &w); err != nil {
			continue
		}
		b, ok := toBlock(w)
		if !ok {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func toBlock(w wireBlock) (entity.TextBlock, bool) {
	if w.Text == nil || strings.TrimSpace(*w.Text) == "" {
		return entity.TextBlock{}, false
	}
	b := entity.TextBlock{Text: *w.Text}
	if w.Confidence != nil {
		if !inUnit(*w.Confidence) {
			return entity.TextBlock{}, false
		}
		b.Confidence = *w.Confidence
	}
	if w.BoundingBox != nil {
		box, ok := toBox(*w.BoundingBox)
		if !ok {
			return entity.TextBlock{}, false
		}
		b.BoundingBox = &box
	}
	if w.FontSize != nil {
		if math.IsNaN(*w.FontSize) || math.IsInf(*w.FontSize, 0) || *w.FontSize <= 0 {
			return entity.TextBlock{}, false
		}
		b.FontSize = *w.FontSize
	}
	if w.Source != nil {
		b.Source = *w.Source
	}
	return b, true
}

func toBox(w wireBox) (entity.BoundingBox, bool) {
	if w.X == nil || w.Y == nil || w.Width == nil || w.Height == nil {
		return entity.BoundingBox{}, false
	}
	box := entity.BoundingBox{X: *w.X, Y: *w.Y, Width: *w.Width, Height: *w.Height}
	if !box.Valid() {
		return entity.BoundingBox{}, false
	}
	return box, true
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= 1
}
