package mapper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeServiceIds(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	t.Run("plain json array", func(t *testing.T) {
		raw := []byte(`["` + a.String() + `","` + b.String() + `"]`)
		ids := NormalizeServiceIds(raw)
		require.Len(t, ids, 2)
		assert.Equal(t, a, ids[0])
		assert.Equal(t, b, ids[1])
	})

	t.Run("double-encoded array", func(t *testing.T) {
		raw := []byte(`"[\"` + a.String() + `\"]"`)
		ids := NormalizeServiceIds(raw)
		require.Len(t, ids, 1)
		assert.Equal(t, a, ids[0])
	})

	t.Run("unparseable ids are skipped", func(t *testing.T) {
		raw := []byte(`["` + a.String() + `","not-a-uuid"]`)
		ids := NormalizeServiceIds(raw)
		require.Len(t, ids, 1)
		assert.Equal(t, a, ids[0])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, NormalizeServiceIds(nil))
		assert.Nil(t, NormalizeServiceIds([]byte{}))
	})

	t.Run("garbage input", func(t *testing.T) {
		assert.Nil(t, NormalizeServiceIds([]byte(`{"not":"an array"}`)))
	})

	t.Run("round trip through model encoding", func(t *testing.T) {
		raw := serviceIdsToJSON([]uuid.UUID{a, b})
		ids := NormalizeServiceIds(raw)
		require.Len(t, ids, 2)
		assert.Equal(t, a, ids[0])
		assert.Equal(t, b, ids[1])
	})
}
