package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reMultiSpace = regexp.MustCompile(`[ \t\x{3000}]+`)
)

// normalizeText folds full-width digits, Latin letters and punctuation
// to their half-width forms and collapses noisy whitespace before
// pattern matching. width.Fold also widens half-width katakana, which
// keeps CJK token runs contiguous. Conservative otherwise: the raw
// block text is preserved on candidates as originalText.
func normalizeText(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = width.Fold.String(s)
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// rawSpan maps a match found in the normalized text back to the
// substring of the raw block text that produced it, so candidates
// carry the text exactly as OCR emitted it. It returns the shortest
// rune-aligned span of raw whose normalized form equals matched, or
// raw itself when no span lines up. Blocks are single receipt lines,
// so the quadratic scan stays cheap.
func rawSpan(raw, matched string) string {
	if matched == "" || raw == matched {
		return raw
	}
	bounds := make([]int, 0, len(raw)+1)
	for i := range raw {
		bounds = append(bounds, i)
	}
	bounds = append(bounds, len(raw))

	best := ""
	for i := 0; i < len(bounds)-1; i++ {
		for j := i + 1; j < len(bounds); j++ {
			span := raw[bounds[i]:bounds[j]]
			if best != "" && len(span) >= len(best) {
				continue
			}
			if normalizeText(span) == matched {
				best = span
			}
		}
	}
	if best == "" {
		return raw
	}
	return best
}
