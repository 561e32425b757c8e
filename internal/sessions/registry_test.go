package sessions

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyo-hirano/receipt-fields/constants"
	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	id := r.Create()
	sess, ok := r.Get(id)
	require.True(t, ok)
	require.NotNil(t, sess)
	assert.Equal(t, 1, r.Len())

	sess.Add(constants.FieldDate, []entity.Candidate{{Value: "2023/12/15", Confidence: 0.9}})
	assert.Len(t, sess.Snapshot(constants.FieldDate), 1)

	require.True(t, r.Reset(id))
	assert.Empty(t, sess.Snapshot(constants.FieldDate))

	r.Delete(id)
	_, ok = r.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryUnknownSession(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get(uuid.New())
	assert.False(t, ok)
	assert.False(t, r.Reset(uuid.New()))
}

func TestRegistrySessionsAreIsolated(t *testing.T) {
	r := NewRegistry()

	a, _ := r.Get(r.Create())
	b, _ := r.Get(r.Create())

	a.Add(constants.FieldAmount, []entity.Candidate{{Value: "1650", Confidence: 0.9}})
	assert.Len(t, a.Snapshot(constants.FieldAmount), 1)
	assert.Empty(t, b.Snapshot(constants.FieldAmount))
}
