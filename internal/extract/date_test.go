package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(nil, Config{ReferenceYear: 2024})
}

func TestNormalizeDateEras(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		m    DateMatch
		want string
		ok   bool
	}{
		{"reiwa first year", DateMatch{Era: "令和", Year: "1", Month: "5", Day: "1"}, "2019/05/01", true},
		{"reiwa by initial", DateMatch{Era: "R", Year: "5", Month: "12", Day: "15"}, "2023/12/15", true},
		{"heisei last year", DateMatch{Era: "平成", Year: "31", Month: "4", Day: "30"}, "2019/04/30", true},
		{"heisei single kanji", DateMatch{Era: "平", Year: "7", Month: "1", Day: "17"}, "1995/01/17", true},
		{"showa last year", DateMatch{Era: "昭和", Year: "64", Month: "1", Day: "7"}, "1989/01/07", true},
		{"taisho last year", DateMatch{Era: "大正", Year: "15", Month: "12", Day: "25"}, "1926/12/25", true},
		{"era year zero", DateMatch{Era: "令和", Year: "0", Month: "1", Day: "1"}, "", false},
		{"heisei past end", DateMatch{Era: "平成", Year: "32", Month: "1", Day: "1"}, "", false},
		{"showa past end", DateMatch{Era: "昭和", Year: "65", Month: "1", Day: "1"}, "", false},
		{"taisho past end", DateMatch{Era: "大正", Year: "16", Month: "1", Day: "1"}, "", false},
		{"unknown era", DateMatch{Era: "慶応", Year: "3", Month: "1", Day: "1"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := e.NormalizeDate(tt.m, 2024)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDateEraFormula(t *testing.T) {
	e := newTestExtractor(t)

	// every valid in-era year follows eraStart + eraYear - 1, bounded
	// by the 1900-2100 calendar range
	for _, era := range defaultEras {
		for eraYear := 1; eraYear <= era.MaxYear; eraYear++ {
			gregorian := era.Start + eraYear - 1
			got, _, ok := e.NormalizeDate(DateMatch{
				Era: era.Name, Year: fmt.Sprintf("%d", eraYear), Month: "6", Day: "15",
			}, 2024)
			if gregorian > 2100 {
				assert.False(t, ok, "%s %d should exceed the calendar range", era.Name, eraYear)
				continue
			}
			require.True(t, ok, "%s %d", era.Name, eraYear)
			assert.Equal(t, fmt.Sprintf("%04d/06/15", gregorian), got)
		}
	}
}

func TestNormalizeDateWestern(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		m    DateMatch
		want string
		ok   bool
	}{
		{"four digit", DateMatch{Year: "2023", Month: "12", Day: "15"}, "2023/12/15", true},
		{"two digit below pivot", DateMatch{Year: "23", Month: "12", Day: "15"}, "2023/12/15", true},
		{"two digit at pivot", DateMatch{Year: "50", Month: "6", Day: "1"}, "1950/06/01", true},
		{"two digit above pivot", DateMatch{Year: "98", Month: "6", Day: "1"}, "1998/06/01", true},
		{"month day only", DateMatch{Month: "12", Day: "15"}, "2024/12/15", true},
		{"month out of range", DateMatch{Year: "2023", Month: "13", Day: "1"}, "", false},
		{"day out of range", DateMatch{Year: "2023", Month: "4", Day: "31"}, "", false},
		{"feb 29 non leap", DateMatch{Year: "2023", Month: "2", Day: "29"}, "", false},
		{"feb 29 leap", DateMatch{Year: "2024", Month: "2", Day: "29"}, "2024/02/29", true},
		{"year below range", DateMatch{Year: "1899", Month: "1", Day: "1"}, "", false},
		{"year above range", DateMatch{Year: "2101", Month: "1", Day: "1"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := e.NormalizeDate(tt.m, 2024)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDatePatternPolicyOrder(t *testing.T) {
	// era designators are tried before Western years, and bare
	// month/day forms come last
	assert.True(t, datePatterns[0].isEra)
	assert.True(t, datePatterns[1].isEra)
	for _, p := range datePatterns[2:] {
		assert.False(t, p.isEra)
	}
	assert.True(t, datePatterns[len(datePatterns)-1].monthDay)
}

func TestLeapYearProperty(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		want := year%4 == 0 && (year%100 != 0 || year%400 == 0)
		assert.Equal(t, want, isValidDate(year, 2, 29), "year %d", year)
	}
}

func TestExtractDatesScenarios(t *testing.T) {
	e := newTestExtractor(t)

	t.Run("reiwa full date", func(t *testing.T) {
		cands := e.extractDates([]entity.TextBlock{{Text: "令和5年12月15日"}})
		require.Len(t, cands, 1)
		assert.Equal(t, "2023/12/15", cands[0].Value)
		// 0.5 base + 0.3 markers + 0.2 era
		assert.InDelta(t, 1.0, cands[0].Confidence, 1e-9)
		assert.Equal(t, "令和5年12月15日", cands[0].OriginalText)
	})

	t.Run("round trip western", func(t *testing.T) {
		cands := e.extractDates([]entity.TextBlock{{Text: "2023/12/15"}})
		require.Len(t, cands, 1)
		assert.Equal(t, "2023/12/15", cands[0].Value)
		assert.InDelta(t, 0.5, cands[0].Confidence, 1e-9)
	})

	t.Run("full width input", func(t *testing.T) {
		cands := e.extractDates([]entity.TextBlock{{Text: "２０２３年１２月１５日"}})
		require.Len(t, cands, 1)
		assert.Equal(t, "2023/12/15", cands[0].Value)
		// the original keeps the full-width glyphs as OCR emitted them
		assert.Equal(t, "２０２３年１２月１５日", cands[0].OriginalText)
	})

	t.Run("original text is a raw substring", func(t *testing.T) {
		raw := "発行日　Ｒ５．１２．１５　レジ01"
		cands := e.extractDates([]entity.TextBlock{{Text: raw}})
		require.Len(t, cands, 1)
		assert.Equal(t, "2023/12/15", cands[0].Value)
		assert.Equal(t, "Ｒ５．１２．１５", cands[0].OriginalText)
		assert.Contains(t, raw, cands[0].OriginalText)
	})

	t.Run("header position bonus", func(t *testing.T) {
		cands := e.extractDates([]entity.TextBlock{{
			Text:        "2023/12/15",
			BoundingBox: &entity.BoundingBox{X: 0.1, Y: 0.02, Width: 0.3, Height: 0.04},
		}})
		require.Len(t, cands, 1)
		assert.InDelta(t, 0.6, cands[0].Confidence, 1e-9)
	})

	t.Run("invalid calendar date is discarded", func(t *testing.T) {
		cands := e.extractDates([]entity.TextBlock{{Text: "2023/02/29"}})
		assert.Empty(t, cands)
	})

	t.Run("era year zero is discarded", func(t *testing.T) {
		cands := e.extractDates([]entity.TextBlock{{Text: "令和0年1月1日"}})
		assert.Empty(t, cands)
	})

	t.Run("month day only uses reference year", func(t *testing.T) {
		cands := e.extractDates([]entity.TextBlock{{Text: "12月15日"}})
		require.Len(t, cands, 1)
		assert.Equal(t, "2024/12/15", cands[0].Value)
		assert.InDelta(t, 0.8, cands[0].Confidence, 1e-9)
	})
}
