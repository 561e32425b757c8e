package server

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kyo-hirano/receipt-fields/constants"
	pb "github.com/kyo-hirano/receipt-fields/gen/proto/receiptfields/v1"
	"github.com/kyo-hirano/receipt-fields/internal/common"
	"github.com/kyo-hirano/receipt-fields/internal/entity"
	"github.com/kyo-hirano/receipt-fields/internal/extract"
	"github.com/kyo-hirano/receipt-fields/internal/history"
	"github.com/kyo-hirano/receipt-fields/internal/sessions"
)

type ExtractorService struct {
	pb.UnimplementedExtractorServiceServer
	extractor *extract.Extractor
	registry  *sessions.Registry
	logger    *zap.Logger
}

func NewExtractorService(ex *extract.Extractor, reg *sessions.Registry, logger *zap.Logger) *ExtractorService {
	return &ExtractorService{extractor: ex, registry: reg, logger: logger}
}

func (s *ExtractorService) CreateSession(ctx context.Context, req *pb.CreateSessionRequest) (*pb.CreateSessionResponse, error) {
	id := s.registry.Create()
	s.logger.Info("session created", zap.String("session_id", id.String()))
	return &pb.CreateSessionResponse{SessionId: id.String()}, nil
}

func (s *ExtractorService) ResetSession(ctx context.Context, req *pb.ResetSessionRequest) (*pb.ResetSessionResponse, error) {
	id, err := uuid.Parse(req.GetSessionId())
	if err != nil {
		return nil, common.InvalidArgumentError("session_id must be a UUID")
	}
	if !s.registry.Reset(id) {
		return nil, common.NotFoundError("session not found")
	}
	return &pb.ResetSessionResponse{}, nil
}

func (s *ExtractorService) CloseSession(ctx context.Context, req *pb.CloseSessionRequest) (*pb.CloseSessionResponse, error) {
	id, err := uuid.Parse(req.GetSessionId())
	if err != nil {
		return nil, common.InvalidArgumentError("session_id must be a UUID")
	}
	s.registry.Delete(id)
	return &pb.CloseSessionResponse{}, nil
}

// ExtractFields runs the engine over the supplied blocks. With a
// session id the per-field candidates are merged with that session's
// history and fresh candidates are appended to it; without one the
// call is stateless.
func (s *ExtractorService) ExtractFields(ctx context.Context, req *pb.ExtractFieldsRequest) (*pb.ExtractFieldsResponse, error) {
	var sess *history.Session
	if sid := req.GetSessionId(); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return nil, common.InvalidArgumentError("session_id must be a UUID")
		}
		var ok bool
		if sess, ok = s.registry.Get(id); !ok {
			return nil, common.NotFoundError("session not found")
		}
	}

	blocks := FromPBBlocks(req.GetBlocks())
	cands, err := s.extractor.Candidates(blocks)
	if err != nil {
		s.logger.Warn("extract failed", zap.Error(err))
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError("invalid text blocks")
		}
		return nil, common.InternalError("extraction failed")
	}

	resp := &pb.ExtractFieldsResponse{}
	for _, f := range constants.AllFields() {
		fieldCands := cands[f]
		if sess != nil {
			merged := sess.Merged(f, fieldCands)
			sess.Add(f, fieldCands)
			fieldCands = merged
		}
		result := ToPBFieldResult(s.extractor.BuildFieldResult(f, fieldCands))
		switch f {
		case constants.FieldDate:
			resp.Date = result
		case constants.FieldPayee:
			resp.Payee = result
		case constants.FieldAmount:
			resp.Amount = result
		case constants.FieldPurpose:
			resp.Purpose = result
		}
	}

	s.logger.Info("fields extracted",
		zap.Int("blocks", len(blocks)),
		zap.String("date", resp.GetDate().GetValue()),
		zap.String("payee", resp.GetPayee().GetValue()),
		zap.String("amount", resp.GetAmount().GetValue()),
		zap.String("purpose", resp.GetPurpose().GetValue()),
	)
	return resp, nil
}

// SelectCandidate routes an explicit reviewer selection into the
// session's history so it resurfaces on later passes.
func (s *ExtractorService) SelectCandidate(ctx context.Context, req *pb.SelectCandidateRequest) (*pb.SelectCandidateResponse, error) {
	sess, field, err := s.sessionField(req.GetSessionId(), req.GetField())
	if err != nil {
		return nil, err
	}
	if req.GetCandidate() == nil || req.GetCandidate().GetValue() == "" {
		return nil, common.InvalidArgumentError("candidate with a value is required")
	}
	c := FromPBCandidate(req.GetCandidate())
	if c.Source == "" {
		c.Source = constants.SourceManual
	}
	sess.Add(field, []entity.Candidate{c})
	return &pb.SelectCandidateResponse{}, nil
}

// RejectCandidate removes a value from the session's history (the
// reviewer rejected the suggestion).
func (s *ExtractorService) RejectCandidate(ctx context.Context, req *pb.RejectCandidateRequest) (*pb.RejectCandidateResponse, error) {
	sess, field, err := s.sessionField(req.GetSessionId(), req.GetField())
	if err != nil {
		return nil, err
	}
	if req.GetValue() == "" {
		return nil, common.InvalidArgumentError("value is required")
	}
	sess.Remove(field, req.GetValue())
	return &pb.RejectCandidateResponse{}, nil
}

func (s *ExtractorService) sessionField(sid, fieldName string) (*history.Session, constants.Field, error) {
	id, err := uuid.Parse(sid)
	if err != nil {
		return nil, "", common.InvalidArgumentError("session_id must be a UUID")
	}
	sess, ok := s.registry.Get(id)
	if !ok {
		return nil, "", common.NotFoundError("session not found")
	}
	field, ok := constants.ParseField(fieldName)
	if !ok {
		return nil, "", common.InvalidArgumentErrorf("unknown field %q, want one of date|payee|amount|purpose", fieldName)
	}
	return sess, field, nil
}
