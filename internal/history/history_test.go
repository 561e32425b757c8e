package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyo-hirano/receipt-fields/constants"
	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

func cand(value string, conf float64) entity.Candidate {
	return entity.Candidate{Value: value, Confidence: conf}
}

func TestAddBoundsBuffer(t *testing.T) {
	s := NewSession()

	var cands []entity.Candidate
	for i := 0; i < 12; i++ {
		cands = append(cands, cand(fmt.Sprintf("v%d", i), 0.5))
	}
	s.Add(constants.FieldPayee, cands)

	got := s.Snapshot(constants.FieldPayee)
	require.Len(t, got, Capacity)
	// newest first, oldest two evicted
	assert.Equal(t, "v11", got[0].Value)
	assert.Equal(t, "v2", got[Capacity-1].Value)
	for _, c := range got {
		assert.NotEqual(t, "v0", c.Value)
		assert.NotEqual(t, "v1", c.Value)
	}
}

func TestAddDeduplicatesNearEntries(t *testing.T) {
	s := NewSession()

	s.Add(constants.FieldAmount, []entity.Candidate{cand("1650", 0.80)})
	s.Add(constants.FieldAmount, []entity.Candidate{cand("1650", 0.805)}) // within epsilon
	assert.Len(t, s.Snapshot(constants.FieldAmount), 1)

	s.Add(constants.FieldAmount, []entity.Candidate{cand("1650", 0.90)}) // distinct confidence
	assert.Len(t, s.Snapshot(constants.FieldAmount), 2)
}

func TestAddStampsDefaults(t *testing.T) {
	s := NewSession()

	s.Add(constants.FieldDate, []entity.Candidate{cand("2023/12/15", 0.9)})
	got := s.Snapshot(constants.FieldDate)
	require.Len(t, got, 1)
	assert.False(t, got[0].Timestamp.IsZero())
	assert.Equal(t, constants.SourceOCR, got[0].Source)
	assert.False(t, got[0].IsHistory)
}

func TestMergedFillsGapsWithoutDisplacingFresh(t *testing.T) {
	s := NewSession()
	s.Add(constants.FieldPayee, []entity.Candidate{
		cand("株式会社アルファ", 0.9),
		cand("ベータ商店", 0.6),
	})

	fresh := []entity.Candidate{
		cand("ベータ商店", 0.3), // weaker re-detection of a known value
		cand("ガンマ薬局", 0.95),
	}
	merged := s.Merged(constants.FieldPayee, fresh)
	require.Len(t, merged, 3)

	assert.Equal(t, "ガンマ薬局", merged[0].Value)
	assert.False(t, merged[0].IsHistory)

	assert.Equal(t, "株式会社アルファ", merged[1].Value)
	assert.True(t, merged[1].IsHistory)
	assert.Equal(t, constants.SourceOCR, merged[1].Source)

	// the fresh, lower-confidence detection wins over its history twin
	assert.Equal(t, "ベータ商店", merged[2].Value)
	assert.False(t, merged[2].IsHistory)
	assert.InDelta(t, 0.3, merged[2].Confidence, 1e-9)
}

func TestMergedKeepsRecordedProvenance(t *testing.T) {
	s := NewSession()
	s.Add(constants.FieldPayee, []entity.Candidate{
		{Value: "株式会社アルファ", Confidence: 0.9, Source: constants.SourceManual},
		{Value: "ベータ商店", Confidence: 0.6, Source: constants.SourceHistory},
	})

	merged := s.Merged(constants.FieldPayee, nil)
	require.Len(t, merged, 2)

	// a reviewer's manual pick resurfaces as manual, not generic history
	assert.Equal(t, "株式会社アルファ", merged[0].Value)
	assert.True(t, merged[0].IsHistory)
	assert.Equal(t, constants.SourceManual, merged[0].Source)

	assert.Equal(t, "ベータ商店", merged[1].Value)
	assert.True(t, merged[1].IsHistory)
	assert.Equal(t, constants.SourceHistory, merged[1].Source)
}

func TestMergedDoesNotMutateHistory(t *testing.T) {
	s := NewSession()
	s.Add(constants.FieldDate, []entity.Candidate{cand("2023/12/15", 0.8)})

	_ = s.Merged(constants.FieldDate, nil)
	got := s.Snapshot(constants.FieldDate)
	require.Len(t, got, 1)
	assert.False(t, got[0].IsHistory)
}

func TestRemove(t *testing.T) {
	s := NewSession()
	s.Add(constants.FieldAmount, []entity.Candidate{cand("1650", 0.9), cand("1500", 0.7)})

	s.Remove(constants.FieldAmount, "1650")
	got := s.Snapshot(constants.FieldAmount)
	require.Len(t, got, 1)
	assert.Equal(t, "1500", got[0].Value)
}

func TestClear(t *testing.T) {
	s := NewSession()
	s.Add(constants.FieldDate, []entity.Candidate{cand("2023/12/15", 0.9)})
	s.Clear()
	assert.Empty(t, s.Snapshot(constants.FieldDate))
}

func TestFieldsAreIndependent(t *testing.T) {
	s := NewSession()
	s.Add(constants.FieldDate, []entity.Candidate{cand("2023/12/15", 0.9)})

	assert.Empty(t, s.Snapshot(constants.FieldAmount))
	s.Remove(constants.FieldAmount, "2023/12/15")
	assert.Len(t, s.Snapshot(constants.FieldDate), 1)
}

func TestAddKeepsExplicitMetadata(t *testing.T) {
	s := NewSession()
	ts := time.Date(2023, 12, 15, 9, 30, 0, 0, time.UTC)
	s.Add(constants.FieldPayee, []entity.Candidate{{
		Value:      "株式会社アルファ",
		Confidence: 0.9,
		Source:     constants.SourceManual,
		Timestamp:  ts,
	}})

	got := s.Snapshot(constants.FieldPayee)
	require.Len(t, got, 1)
	assert.Equal(t, constants.SourceManual, got[0].Source)
	assert.True(t, got[0].Timestamp.Equal(ts))
}
