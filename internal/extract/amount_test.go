package extract

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyo-hirano/receipt-fields/constants"
	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1650", 1650},
		{"1,650", 1650},
		{"12,345,678", 12345678},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"99999999999999999999", 0}, // overflow
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeAmount(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeAmountIdempotent(t *testing.T) {
	first := NormalizeAmount("1,650")
	again := NormalizeAmount(strconv.FormatInt(first, 10))
	assert.Equal(t, first, again)
}

func TestCalculateDistanceSelf(t *testing.T) {
	box := entity.BoundingBox{X: 0.2, Y: 0.4, Width: 0.3, Height: 0.1}
	assert.Zero(t, calculateDistance(box, box))
}

func TestKeywordWeights(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		text string
		want float64
	}{
		{"合計 ¥1,650", 1.0},
		{"お会計", 0.9},
		{"税込", 0.9},
		{"総額", 0.8},
		{"小計 ¥1,500", 0.7},
		{"計", 0.6},
		{"金額", 0.5},
		{"お釣り", 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, e.keywordWeight(tt.text), 1e-9, "text %q", tt.text)
	}
}

func TestExtractAmountsTotalOutranksLineItems(t *testing.T) {
	e := newTestExtractor(t)

	// blocks spaced vertically so no proximity bonus leaks between them
	blocks := []entity.TextBlock{
		{Text: "小計 ¥1,500", BoundingBox: &entity.BoundingBox{X: 0.1, Y: 0.48, Width: 0.6, Height: 0.04}},
		{Text: "消費税(10%) ¥150", BoundingBox: &entity.BoundingBox{X: 0.1, Y: 0.68, Width: 0.6, Height: 0.04}},
		{Text: "合計 ¥1,650", BoundingBox: &entity.BoundingBox{X: 0.1, Y: 0.88, Width: 0.6, Height: 0.04}},
	}
	cands := e.extractAmounts(blocks)
	require.Len(t, cands, 3)

	result := e.BuildFieldResult(constants.FieldAmount, cands)
	require.NotEmpty(t, result.Candidates)
	assert.Equal(t, "1650", result.Value)
	// 0.3 base + 0.2 symbol + 0.1 grouping + 0.5 * 合計
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
	assert.Equal(t, "1500", result.Candidates[1].Value)
}

func TestExtractAmountsProximityKeyword(t *testing.T) {
	e := newTestExtractor(t)

	// the label and the amount are separate blocks on the same line
	blocks := []entity.TextBlock{
		{Text: "合計", BoundingBox: &entity.BoundingBox{X: 0.1, Y: 0.8, Width: 0.1, Height: 0.04}},
		{Text: "¥1,650", BoundingBox: &entity.BoundingBox{X: 0.22, Y: 0.8, Width: 0.1, Height: 0.04}},
	}
	cands := e.extractAmounts(blocks)
	require.Len(t, cands, 1)
	assert.Equal(t, "1650", cands[0].Value)
	assert.InDelta(t, 1.0, cands[0].Confidence, 1e-9)
}

func TestExtractAmountsDuplicateTextProcessedOnce(t *testing.T) {
	e := newTestExtractor(t)

	blocks := []entity.TextBlock{
		{Text: "¥500"},
		{Text: "¥500"},
	}
	cands := e.extractAmounts(blocks)
	assert.Len(t, cands, 1)
}

func TestAmountTieBreakPrefersLargerValue(t *testing.T) {
	e := newTestExtractor(t)

	blocks := []entity.TextBlock{
		{Text: "¥100"},
		{Text: "¥200"},
	}
	cands := e.extractAmounts(blocks)
	require.Len(t, cands, 2)
	assert.InDelta(t, cands[0].Confidence, cands[1].Confidence, 1e-9)

	result := e.BuildFieldResult(constants.FieldAmount, cands)
	assert.Equal(t, "200", result.Value)
}

func TestExtractAmountsPatternPrecedence(t *testing.T) {
	e := newTestExtractor(t)

	t.Run("suffixed yen", func(t *testing.T) {
		cands := e.extractAmounts([]entity.TextBlock{{Text: "1,650円"}})
		require.Len(t, cands, 1)
		assert.Equal(t, "1650", cands[0].Value)
		// symbol + grouping
		assert.InDelta(t, 0.6, cands[0].Confidence, 1e-9)
	})

	t.Run("bare grouped digits", func(t *testing.T) {
		cands := e.extractAmounts([]entity.TextBlock{{Text: "1,650"}})
		require.Len(t, cands, 1)
		assert.Equal(t, "1650", cands[0].Value)
		assert.InDelta(t, 0.4, cands[0].Confidence, 1e-9)
	})

	t.Run("full width yen amount", func(t *testing.T) {
		cands := e.extractAmounts([]entity.TextBlock{{Text: "１，６５０円"}})
		require.Len(t, cands, 1)
		assert.Equal(t, "1650", cands[0].Value)
	})
}

func TestExtractAmountsOriginalTextIsRawSubstring(t *testing.T) {
	e := newTestExtractor(t)

	t.Run("full width with ideographic space", func(t *testing.T) {
		raw := "合計　１，６５０円"
		cands := e.extractAmounts([]entity.TextBlock{{Text: raw}})
		require.Len(t, cands, 1)
		assert.Equal(t, "1650", cands[0].Value)
		assert.Equal(t, "１，６５０円", cands[0].OriginalText)
		assert.Contains(t, raw, cands[0].OriginalText)
	})

	t.Run("half width passes through", func(t *testing.T) {
		cands := e.extractAmounts([]entity.TextBlock{{Text: "合計 ¥1,650"}})
		require.Len(t, cands, 1)
		assert.Equal(t, "¥1,650", cands[0].OriginalText)
	})
}

func TestExtractAmountsLongDigitRuns(t *testing.T) {
	e := newTestExtractor(t)

	t.Run("ten digits match whole run", func(t *testing.T) {
		cands := e.extractAmounts([]entity.TextBlock{{Text: "1234567890"}})
		require.Len(t, cands, 1)
		// never a truncated tail of the run
		assert.Equal(t, "1234567890", cands[0].Value)
	})

	t.Run("overflow normalizes to zero", func(t *testing.T) {
		cands := e.extractAmounts([]entity.TextBlock{{Text: "99999999999999999999"}})
		require.Len(t, cands, 1)
		assert.Equal(t, "0", cands[0].Value)
	})
}
