package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

func bodyBox(y float64) *entity.BoundingBox {
	return &entity.BoundingBox{X: 0.1, Y: y, Width: 0.5, Height: 0.04}
}

func TestExtractPurposeThreeItems(t *testing.T) {
	e := newTestExtractor(t)

	blocks := []entity.TextBlock{
		{Text: "コーヒー", BoundingBox: bodyBox(0.40)},
		{Text: "サンドイッチ", BoundingBox: bodyBox(0.50)},
		{Text: "ケーキ", BoundingBox: bodyBox(0.60)},
	}
	cands := e.extractPurpose(blocks)
	require.Len(t, cands, 1)
	assert.Equal(t, "コーヒー・サンドイッチ等", cands[0].Value)
	assert.InDelta(t, purposeConfidence, cands[0].Confidence, 1e-9)
}

func TestExtractPurposeJoinRules(t *testing.T) {
	e := newTestExtractor(t)

	t.Run("single term", func(t *testing.T) {
		cands := e.extractPurpose([]entity.TextBlock{{Text: "コーヒー", BoundingBox: bodyBox(0.5)}})
		require.Len(t, cands, 1)
		assert.Equal(t, "コーヒー", cands[0].Value)
	})

	t.Run("two terms", func(t *testing.T) {
		cands := e.extractPurpose([]entity.TextBlock{
			{Text: "コーヒー", BoundingBox: bodyBox(0.4)},
			{Text: "ケーキ", BoundingBox: bodyBox(0.5)},
		})
		require.Len(t, cands, 1)
		assert.Equal(t, "コーヒー・ケーキ", cands[0].Value)
	})
}

func TestExtractPurposeFrequencyRanking(t *testing.T) {
	e := newTestExtractor(t)

	blocks := []entity.TextBlock{
		{Text: "ケーキ", BoundingBox: bodyBox(0.40)},
		{Text: "コーヒー", BoundingBox: bodyBox(0.45)},
		{Text: "コーヒー", BoundingBox: bodyBox(0.50)},
		{Text: "サンドイッチ", BoundingBox: bodyBox(0.55)},
	}
	cands := e.extractPurpose(blocks)
	require.Len(t, cands, 1)
	// コーヒー appears twice and leads; ケーキ wins the tie on first
	// appearance
	assert.Equal(t, "コーヒー・ケーキ等", cands[0].Value)
}

func TestExtractPurposeBandFilter(t *testing.T) {
	e := newTestExtractor(t)

	blocks := []entity.TextBlock{
		{Text: "ヘッダー商品", BoundingBox: bodyBox(0.10)}, // above the body band
		{Text: "フッター商品", BoundingBox: bodyBox(0.90)}, // below it
		{Text: "レシート商品"},                              // no position at all
	}
	assert.Empty(t, e.extractPurpose(blocks))
}

func TestExtractPurposeSkipsDateAndAmountLines(t *testing.T) {
	e := newTestExtractor(t)

	blocks := []entity.TextBlock{
		{Text: "2023/12/15", BoundingBox: bodyBox(0.4)},
		{Text: "¥1,650", BoundingBox: bodyBox(0.5)},
		{Text: "コーヒー", BoundingBox: bodyBox(0.6)},
	}
	cands := e.extractPurpose(blocks)
	require.Len(t, cands, 1)
	assert.Equal(t, "コーヒー", cands[0].Value)
}

func TestTokenizeTerms(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"コーヒー", []string{"コーヒー"}},
		{"コーヒー L", []string{"コーヒー"}},           // single-letter run dropped
		{"カフェラテ Latte", []string{"カフェラテ", "Latte"}},
		{"お茶 x2", []string{"お茶"}},
		{"チョコレートケーキ(1個)", []string{"チョコレートケーキ"}}, // digits and a lone kanji are not terms
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tokenizeTerms(tt.in), "input %q", tt.in)
	}
}
