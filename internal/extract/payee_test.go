package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

func TestExtractPayeesCorporateHeadline(t *testing.T) {
	e := newTestExtractor(t)

	cands := e.extractPayees([]entity.TextBlock{{
		Text:        "株式会社テストレストラン",
		BoundingBox: &entity.BoundingBox{X: 0.2, Y: 0.02, Width: 0.6, Height: 0.05},
		FontSize:    24,
	}})
	require.Len(t, cands, 1)
	assert.Equal(t, "株式会社テストレストラン", cands[0].Value)
	// suffix + position + font saturate the score
	assert.GreaterOrEqual(t, cands[0].Confidence, 0.8)
	assert.InDelta(t, 1.0, cands[0].Confidence, 1e-9)
}

func TestExtractPayeesSuffixAloneIsNotCertain(t *testing.T) {
	e := newTestExtractor(t)

	cands := e.extractPayees([]entity.TextBlock{{Text: "さくら薬局"}})
	require.Len(t, cands, 1)
	// 0.3 base + 0.4 suffix, no positional or typographic signal
	assert.InDelta(t, 0.7, cands[0].Confidence, 1e-9)
}

func TestExtractPayeesHeadlineWithoutSuffix(t *testing.T) {
	e := newTestExtractor(t)

	cands := e.extractPayees([]entity.TextBlock{{
		Text:        "サンプルマート",
		BoundingBox: &entity.BoundingBox{X: 0.2, Y: 0.05, Width: 0.6, Height: 0.05},
		FontSize:    20,
	}})
	require.Len(t, cands, 1)
	assert.InDelta(t, 0.8, cands[0].Confidence, 1e-9)
}

func TestExtractPayeesExclusions(t *testing.T) {
	e := newTestExtractor(t)

	headline := entity.BoundingBox{X: 0.2, Y: 0.02, Width: 0.6, Height: 0.05}
	tests := []struct {
		name string
		b    entity.TextBlock
	}{
		{"too short", entity.TextBlock{Text: "あ", BoundingBox: &headline, FontSize: 24}},
		{"purely numeric", entity.TextBlock{Text: "0120-123-456", BoundingBox: &headline, FontSize: 24}},
		{"date line", entity.TextBlock{Text: "2023/12/15", BoundingBox: &headline, FontSize: 24}},
		{"amount line", entity.TextBlock{Text: "合計 ¥1,650", BoundingBox: &headline, FontSize: 24}},
		{"body text small font", entity.TextBlock{Text: "ポイントカードはお持ちですか"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, e.extractPayees([]entity.TextBlock{tt.b}))
		})
	}
}

func TestExtractPayeesRetailSuffixTable(t *testing.T) {
	e := newTestExtractor(t)

	for _, text := range []string{"山田商店", "中央薬局", "にしき堂", "青山書店", "末広寿司店"} {
		cands := e.extractPayees([]entity.TextBlock{{Text: text}})
		require.Len(t, cands, 1, "text %q", text)
		assert.Equal(t, text, cands[0].Value)
	}
}
