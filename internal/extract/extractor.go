package extract

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/kyo-hirano/receipt-fields/constants"
	"github.com/kyo-hirano/receipt-fields/internal/common"
	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

// Candidates runs the four extractors over blocks and returns the raw,
// unranked candidate sets keyed by field. A nil block slice is the one
// illegal-argument condition; everything else degrades to empty sets.
func (e *Extractor) Candidates(blocks []entity.TextBlock) (map[constants.Field][]entity.Candidate, error) {
	if blocks == nil {
		return nil, common.WrapError(common.ErrInvalidInput, "text blocks must not be nil")
	}
	valid := filterBlocks(blocks)
	return map[constants.Field][]entity.Candidate{
		constants.FieldDate:    e.extractDates(valid),
		constants.FieldPayee:   e.extractPayees(valid),
		constants.FieldAmount:  e.extractAmounts(valid),
		constants.FieldPurpose: e.extractPurpose(valid),
	}, nil
}

// ExtractFields is the single entry point: blocks in, four ranked
// FieldResults out. The extractors are independent and share no
// mutable state, so the result is a deterministic function of the
// input.
func (e *Extractor) ExtractFields(blocks []entity.TextBlock) (entity.ExtractionResult, error) {
	cands, err := e.Candidates(blocks)
	if err != nil {
		return entity.ExtractionResult{}, err
	}
	var result entity.ExtractionResult
	for _, f := range constants.AllFields() {
		*result.Field(f) = e.BuildFieldResult(f, cands[f])
	}
	e.logger.Debug("extract.fields",
		"blocks", len(blocks),
		"date", result.Date.Value, "payee", result.Payee.Value,
		"amount", result.Amount.Value, "purpose", result.Purpose.Value,
	)
	return result, nil
}

// BuildFieldResult ranks candidates with the field's tie-break policy
// and keeps the shortlist. Empty input yields an empty result, not an
// error.
func (e *Extractor) BuildFieldResult(field constants.Field, cands []entity.Candidate) entity.FieldResult {
	ranked := make([]entity.Candidate, len(cands))
	copy(ranked, cands)
	SortCandidates(field, ranked)
	if len(ranked) > e.cfg.MaxCandidates {
		ranked = ranked[:e.cfg.MaxCandidates]
	}
	if len(ranked) == 0 {
		return entity.FieldResult{Candidates: []entity.Candidate{}}
	}
	return entity.FieldResult{
		Value:      ranked[0].Value,
		Confidence: ranked[0].Confidence,
		Candidates: ranked,
	}
}

// SortCandidates orders by descending confidence. Ties resolve to the
// larger amount for the amount field (a 合計 line outranks a line item
// even at equal score) and to recency for the other fields.
func SortCandidates(field constants.Field, cands []entity.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Confidence != cands[j].Confidence {
			return cands[i].Confidence > cands[j].Confidence
		}
		if field == constants.FieldAmount {
			return amountOf(cands[i]) > amountOf(cands[j])
		}
		return cands[i].Timestamp.After(cands[j].Timestamp)
	})
}

func amountOf(c entity.Candidate) int64 {
	n, err := strconv.ParseInt(c.Value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// filterBlocks drops blocks the extractors cannot use: empty text
// after trimming, or non-finite OCR metadata. A malformed bounding box
// or font size degrades to absent rather than dropping the text.
func filterBlocks(blocks []entity.TextBlock) []entity.TextBlock {
	out := make([]entity.TextBlock, 0, len(blocks))
	for _, b := range blocks {
		if strings.TrimSpace(b.Text) == "" {
			continue
		}
		if math.IsNaN(b.Confidence) || math.IsInf(b.Confidence, 0) || b.Confidence < 0 {
			b.Confidence = 0
		}
		if b.BoundingBox != nil && !b.BoundingBox.Valid() {
			b.BoundingBox = nil
		}
		if math.IsNaN(b.FontSize) || math.IsInf(b.FontSize, 0) || b.FontSize < 0 {
			b.FontSize = 0
		}
		out = append(out, b)
	}
	return out
}

func blockSource(b entity.TextBlock) string {
	if b.Source != "" {
		return b.Source
	}
	return constants.SourceOCR
}
