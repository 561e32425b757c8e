package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

// amountPattern is one entry of the ordered currency match policy;
// the first matching pattern wins for a block.
type amountPattern struct {
	name      string
	re        *regexp.Regexp
	hasSymbol bool
}

// OCR sometimes decodes the yen sign as a JIS backslash, so both are
// accepted as a prefix symbol.
var amountPatterns = []amountPattern{
	{name: "yen-prefixed", re: regexp.MustCompile(`[¥\\]\s*(\d{1,3}(?:,\d{3})*|\d+)`), hasSymbol: true},
	{name: "yen-suffixed", re: regexp.MustCompile(`(\d{1,3}(?:,\d{3})*|\d+)\s*円`), hasSymbol: true},
	{name: "grouped", re: regexp.MustCompile(`\b(\d{1,3}(?:,\d{3})+)\b`)},
	{name: "digits", re: regexp.MustCompile(`\b(\d+)\b`)},
}

var reGrouped = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+$`)

// NormalizeAmount strips grouping separators from a matched digit
// string and parses a non-negative integer amount. Any parse failure
// or negative result yields 0, never a passed-through garbage value.
func NormalizeAmount(s string) int64 {
	digits := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// keywordWeight returns the weight of the strongest total-indicating
// keyword contained in text, or 0.
func (e *Extractor) keywordWeight(text string) float64 {
	for _, kw := range e.totalKeywords {
		if strings.Contains(text, kw.word) {
			return kw.weight
		}
	}
	return 0
}

// calculateDistance is the Euclidean distance between two bounding-box
// centers in normalized image coordinates.
func calculateDistance(a, b entity.BoundingBox) float64 {
	ax, ay := a.Center()
	bx, by := b.Center()
	return math.Hypot(ax-bx, ay-by)
}

// nearbyKeywordWeight returns the strongest keyword weight among
// blocks whose centers lie within the proximity threshold of block i.
func (e *Extractor) nearbyKeywordWeight(blocks []entity.TextBlock, i int) float64 {
	own := blocks[i].BoundingBox
	if own == nil {
		return 0
	}
	best := 0.0
	for j := range blocks {
		other := blocks[j].BoundingBox
		if j == i || other == nil {
			continue
		}
		if calculateDistance(*own, *other) > e.cfg.NearbyDistance {
			continue
		}
		if w := e.keywordWeight(normalizeText(blocks[j].Text)); w > best {
			best = w
		}
	}
	return best
}

func (e *Extractor) extractAmounts(blocks []entity.TextBlock) []entity.Candidate {
	now := time.Now().UTC()
	seen := make(map[string]struct{})
	var out []entity.Candidate
	for i := range blocks {
		text := normalizeText(blocks[i].Text)
		if text == "" {
			continue
		}
		// identical raw text across blocks is processed once
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}

		for _, p := range amountPatterns {
			groups := p.re.FindStringSubmatch(text)
			if groups == nil {
				continue
			}
			raw := groups[1]
			amount := NormalizeAmount(raw)

			conf := 0.3
			if p.hasSymbol {
				conf += 0.2
			}
			if reGrouped.MatchString(raw) {
				conf += 0.1
			}
			kw := e.keywordWeight(text)
			if near := e.nearbyKeywordWeight(blocks, i); near > kw {
				kw = near
			}
			conf += 0.5 * kw
			if conf > 1.0 {
				conf = 1.0
			}

			out = append(out, entity.Candidate{
				Value:        strconv.FormatInt(amount, 10),
				Confidence:   conf,
				OriginalText: rawSpan(blocks[i].Text, groups[0]),
				Source:       blockSource(blocks[i]),
				Timestamp:    now,
			})
			break
		}
	}
	return out
}

// looksLikeAmount reports whether s contains a currency-like amount
// (symbol-marked or separator-grouped). The bare-digits fallback
// pattern is deliberately not consulted: a store name containing a
// digit is not an amount line.
func looksLikeAmount(s string) bool {
	for _, p := range amountPatterns {
		if p.name == "digits" {
			continue
		}
		if p.re.MatchString(s) {
			return true
		}
	}
	return false
}
