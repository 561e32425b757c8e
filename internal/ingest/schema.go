package ingest

// TextBlockSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map for one OCR payload: an array of text blocks. The CLI
// validates exports against it before decoding.
func TextBlockSchema() map[string]any {
	box := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"x":      normProp(),
			"y":      normProp(),
			"width":  normProp(),
			"height": normProp(),
		},
		"required": []string{"x", "y", "width", "height"},
	}
	block := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text":         map[string]any{"type": "string", "minLength": 1},
			"confidence":   normProp(),
			"bounding_box": box,
			"font_size":    map[string]any{"type": "number", "exclusiveMinimum": 0.0},
			"source":       map[string]any{"type": "string"},
		},
		"required": []string{"text"},
	}
	return map[string]any{
		"type":  "array",
		"items": block,
	}
}

func normProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
}
