package kernel_test

import (
	"slices"
	"testing"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonical = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid random UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should accept canonical, braced, urn and compact forms", func(t *testing.T) {
		for _, input := range []string{
			canonical,
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
		} {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err, input)
			assert.Equal(t, canonical, id.String())
		}
	})

	t.Run("should return error for invalid UUID format", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716", canonical + "-extra"} {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("should parse nil UUID but fail validation", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.NoError(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip through Bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(id))
	})

	t.Run("should return error for invalid byte length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject nil bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("modifying the returned value does not affect the UUID", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, before, id.String())
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, zero.Validate())
	assert.NoError(t, kernel.NewUUID().Validate())
}

func TestUUID_Compare(t *testing.T) {
	low, _ := kernel.UUIDFromString("00000000-0000-4000-8000-000000000001")
	mid, _ := kernel.UUIDFromString("7fffffff-0000-4000-8000-000000000000")
	high, _ := kernel.UUIDFromString("ffffffff-0000-4000-8000-000000000000")

	t.Run("should order byte-wise", func(t *testing.T) {
		assert.Equal(t, -1, low.Compare(mid))
		assert.Equal(t, 1, high.Compare(mid))
		assert.Equal(t, 0, mid.Compare(mid))
	})

	t.Run("should sort ids deterministically", func(t *testing.T) {
		ids := []kernel.UUID{high, low, mid}

		slices.SortFunc(ids, kernel.UUID.Compare)

		assert.Equal(t, []kernel.UUID{low, mid, high}, ids)
	})
}
