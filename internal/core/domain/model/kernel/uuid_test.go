package kernel_test

import (
	"testing"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("creates valid unique identifiers", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		require.NoError(t, id2.Validate())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses canonical representation", func(t *testing.T) {
		const raw = "550e8400-e29b-41d4-a716-446655440000"

		id, err := kernel.UUIDFromString(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{"", "not-a-uuid", "550e8400"} {
			_, err := kernel.UUIDFromString(raw)
			require.Error(t, err)
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through Bytes", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, id.IsEqual(restored))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("rejects all-zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID
		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}
