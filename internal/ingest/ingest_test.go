package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyo-hirano/receipt-fields/internal/common"
)

const validPayload = `[
  {"text": "株式会社テストマート", "confidence": 0.93,
   "bounding_box": {"x": 0.2, "y": 0.02, "width": 0.6, "height": 0.05},
   "font_size": 22},
  {"text": "合計 ¥1,650", "confidence": 0.88}
]`

func TestValidateJSON(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		assert.NoError(t, ValidateJSON([]byte(validPayload)))
	})

	t.Run("missing text", func(t *testing.T) {
		assert.Error(t, ValidateJSON([]byte(`[{"confidence": 0.5}]`)))
	})

	t.Run("confidence out of range", func(t *testing.T) {
		assert.Error(t, ValidateJSON([]byte(`[{"text": "a", "confidence": 1.5}]`)))
	})

	t.Run("not an array", func(t *testing.T) {
		assert.Error(t, ValidateJSON([]byte(`{"text": "a"}`)))
	})
}

func TestDecodeBlocks(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		blocks, err := DecodeBlocks([]byte(validPayload))
		require.NoError(t, err)
		require.Len(t, blocks, 2)
		assert.Equal(t, "株式会社テストマート", blocks[0].Text)
		require.NotNil(t, blocks[0].BoundingBox)
		assert.InDelta(t, 0.6, blocks[0].BoundingBox.Width, 1e-9)
		assert.Nil(t, blocks[1].BoundingBox)
	})

	t.Run("top level object is an error", func(t *testing.T) {
		_, err := DecodeBlocks([]byte(`{"text": "a"}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})

	t.Run("null document is an error", func(t *testing.T) {
		_, err := DecodeBlocks([]byte(`null`))
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})

	t.Run("malformed blocks are dropped, siblings kept", func(t *testing.T) {
		payload := `[
		  {"text": ""},
		  {"text": "valid", "bounding_box": {"x": 0.1, "y": 0.1, "width": -0.5, "height": 0.1}},
		  {"confidence": 0.9},
		  {"text": 42},
		  {"text": "合計 ¥1,650"}
		]`
		blocks, err := DecodeBlocks([]byte(payload))
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, "合計 ¥1,650", blocks[0].Text)
	})

	t.Run("empty array", func(t *testing.T) {
		blocks, err := DecodeBlocks([]byte(`[]`))
		require.NoError(t, err)
		assert.NotNil(t, blocks)
		assert.Empty(t, blocks)
	})

	t.Run("incomplete bounding box drops the block", func(t *testing.T) {
		blocks, err := DecodeBlocks([]byte(`[{"text": "a b", "bounding_box": {"x": 0.1, "y": 0.1}}]`))
		require.NoError(t, err)
		assert.Empty(t, blocks)
	})
}
