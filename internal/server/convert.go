package server

import (
	"time"

	pb "github.com/kyo-hirano/receipt-fields/gen/proto/receiptfields/v1"
	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

// FromPBBlocks always returns a non-nil slice: at the wire boundary an
// absent block list is indistinguishable from an empty one, and both
// mean "nothing recognized", not an error.
func FromPBBlocks(in []*pb.TextBlock) []entity.TextBlock {
	out := make([]entity.TextBlock, 0, len(in))
	for _, b := range in {
		if b == nil {
			continue
		}
		block := entity.TextBlock{
			Text:       b.GetText(),
			Confidence: b.GetConfidence(),
			FontSize:   b.GetFontSize(),
			Source:     b.GetSource(),
		}
		if box := b.GetBoundingBox(); box != nil {
			block.BoundingBox = &entity.BoundingBox{
				X:      box.GetX(),
				Y:      box.GetY(),
				Width:  box.GetWidth(),
				Height: box.GetHeight(),
			}
		}
		out = append(out, block)
	}
	return out
}

func FromPBCandidate(c *pb.Candidate) entity.Candidate {
	out := entity.Candidate{
		Value:        c.GetValue(),
		Confidence:   c.GetConfidence(),
		OriginalText: c.GetOriginalText(),
		Source:       c.GetSource(),
		IsHistory:    c.GetIsHistory(),
	}
	if ts, err := time.Parse(time.RFC3339, c.GetTimestamp()); err == nil {
		out.Timestamp = ts
	}
	return out
}

func ToPBCandidate(c entity.Candidate) *pb.Candidate {
	return &pb.Candidate{
		Value:        c.Value,
		Confidence:   c.Confidence,
		OriginalText: c.OriginalText,
		Source:       c.Source,
		Timestamp:    c.Timestamp.UTC().Format(time.RFC3339),
		IsHistory:    c.IsHistory,
	}
}

func ToPBFieldResult(r entity.FieldResult) *pb.FieldResult {
	cands := make([]*pb.Candidate, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		cands = append(cands, ToPBCandidate(c))
	}
	return &pb.FieldResult{
		Value:      r.Value,
		Confidence: r.Confidence,
		Candidates: cands,
	}
}
