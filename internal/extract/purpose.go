package extract

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/kyo-hirano/receipt-fields/constants"
	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

const purposeConfidence = 0.7

func (e *Extractor) extractPurpose(blocks []entity.TextBlock) []entity.Candidate {
	counts := make(map[string]int)
	var order []string // first-seen order for stable tie-breaks

	for i := range blocks {
		text := normalizeText(blocks[i].Text)
		if utf8.RuneCountInString(text) < 2 {
			continue
		}
		// item lines sit in the body band between header and totals
		if blocks[i].BoundingBox == nil {
			continue
		}
		_, cy := blocks[i].BoundingBox.Center()
		if cy <= e.cfg.BodyTop || cy >= e.cfg.BodyBottom {
			continue
		}
		if looksLikeDate(text) || looksLikeAmount(text) {
			continue
		}
		for _, term := range tokenizeTerms(text) {
			if counts[term] == 0 {
				order = append(order, term)
			}
			counts[term]++
		}
	}
	if len(order) == 0 {
		return nil
	}

	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})
	top := order
	if len(top) > 3 {
		top = top[:3]
	}

	var summary string
	switch len(top) {
	case 1:
		summary = top[0]
	case 2:
		summary = top[0] + "・" + top[1]
	default:
		summary = top[0] + "・" + top[1] + "等"
	}

	return []entity.Candidate{{
		Value:        summary,
		Confidence:   purposeConfidence,
		OriginalText: strings.Join(top, " "),
		Source:       constants.SourceOCR,
		Timestamp:    time.Now().UTC(),
	}}
}

// tokenizeTerms splits a line into contiguous runs of CJK characters
// or Latin letters and discards runs shorter than two runes.
func tokenizeTerms(s string) []string {
	const (
		kindNone = iota
		kindCJK
		kindLatin
	)
	var terms []string
	var run []rune
	kind := kindNone

	flush := func() {
		if len(run) >= 2 {
			terms = append(terms, string(run))
		}
		run = run[:0]
	}
	for _, r := range s {
		k := kindNone
		switch {
		case isCJK(r):
			k = kindCJK
		case unicode.In(r, unicode.Latin):
			k = kindLatin
		}
		if k != kind {
			flush()
			kind = k
		}
		if k != kindNone {
			run = append(run, r)
		}
	}
	flush()
	return terms
}

// isCJK covers the scripts receipts mix freely. The prolonged sound
// mark and the iteration mark are script-Common in Unicode but must
// not split a katakana or kanji run (コーヒー is one term).
func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana) || r == 'ー' || r == '々'
}
