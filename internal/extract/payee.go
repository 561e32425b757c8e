package extract

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

var (
	// legal-entity designators, anywhere in the block (receipts print
	// them both before and after the trade name, plus squared forms)
	rePayeeCorporate = regexp.MustCompile(`株式会社|有限会社|合同会社|合資会社|\(株\)|㈱|\(有\)|㈲`)
	// retail-type suffixes, end of block only
	rePayeeShop = regexp.MustCompile(`(店|商店|薬局|堂|院|館|屋)$`)
	// digits plus punctuation: phone numbers, register ids, totals
	rePayeeNumeric = regexp.MustCompile(`^[0-9,.\-/:¥\\ ]+$`)
)

func (e *Extractor) extractPayees(blocks []entity.TextBlock) []entity.Candidate {
	now := time.Now().UTC()
	var out []entity.Candidate
	for i := range blocks {
		text := normalizeText(blocks[i].Text)
		if utf8.RuneCountInString(text) < e.cfg.MinPayeeLength {
			continue
		}
		if rePayeeNumeric.MatchString(text) {
			continue
		}
		if looksLikeDate(text) || looksLikeAmount(text) {
			continue
		}

		suffixMatch := rePayeeCorporate.MatchString(text) || rePayeeShop.MatchString(text)
		upperPosition := false
		if blocks[i].BoundingBox != nil {
			if _, cy := blocks[i].BoundingBox.Center(); cy < e.cfg.PayeeBand {
				upperPosition = true
			}
		}
		largeFont := blocks[i].FontSize >= e.cfg.LargeFontSize

		// a suffix match qualifies on its own; otherwise the block must
		// be a prominently placed headline
		if !suffixMatch && !(upperPosition && largeFont) {
			continue
		}

		conf := 0.3
		if suffixMatch {
			conf += 0.4
		}
		if upperPosition {
			conf += 0.3
		}
		if largeFont {
			conf += 0.2
		}
		if conf > 1.0 {
			conf = 1.0
		}

		out = append(out, entity.Candidate{
			Value:        text,
			Confidence:   conf,
			OriginalText: blocks[i].Text,
			Source:       blockSource(blocks[i]),
			Timestamp:    now,
		})
	}
	return out
}
