package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("LongestDigitRunWins", func(t *testing.T) {
		barcode, ok := Resolve([]string{"ABC123", "99", "4567890"})
		require.True(t, ok)
		assert.Equal(t, "4567890", barcode)
	})

	t.Run("NoDigitsAnywhere", func(t *testing.T) {
		_, ok := Resolve([]string{"abc", "--"})
		assert.False(t, ok)
	})

	t.Run("EmptyCandidateSet", func(t *testing.T) {
		_, ok := Resolve(nil)
		assert.False(t, ok)
	})

	t.Run("TiesBrokenByFirstSeen", func(t *testing.T) {
		barcode, ok := Resolve([]string{"111", "222"})
		require.True(t, ok)
		assert.Equal(t, "111", barcode)
	})

	t.Run("NoiseStrippedWithinCandidate", func(t *testing.T) {
		barcode, ok := Resolve([]string{"EAN: 8801-2345-67890"})
		require.True(t, ok)
		assert.Equal(t, "8801234567890", barcode)
	})
}

func TestRecentBuffer(t *testing.T) {
	t.Run("NewestFirst", func(t *testing.T) {
		b := NewRecentBuffer(5)
		b.Push("1")
		b.Push("2")
		b.Push("3")
		assert.Equal(t, []string{"3", "2", "1"}, b.Values())

		latest, ok := b.Latest()
		require.True(t, ok)
		assert.Equal(t, "3", latest)
	})

	t.Run("DeduplicatesWithoutReordering", func(t *testing.T) {
		b := NewRecentBuffer(5)
		b.Push("1")
		b.Push("2")
		b.Push("1") // already present, stays where it is
		assert.Equal(t, []string{"2", "1"}, b.Values())
	})

	t.Run("TruncatesAtCapacity", func(t *testing.T) {
		b := NewRecentBuffer(3)
		for _, v := range []string{"1", "2", "3", "4", "5"} {
			b.Push(v)
		}
		assert.Equal(t, []string{"5", "4", "3"}, b.Values())
		assert.Equal(t, 3, b.Len())
	})

	t.Run("EmptyBuffer", func(t *testing.T) {
		b := NewRecentBuffer(0) // default capacity
		_, ok := b.Latest()
		assert.False(t, ok)
		assert.Empty(t, b.Values())
	})
}

func TestUnavailableDecoder(t *testing.T) {
	d := Unavailable("pyzbar not installed")
	assert.False(t, d.Available())

	_, err := d.Decode(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pyzbar not installed")

	_, err = Unavailable("").Decode(context.Background())
	assert.ErrorIs(t, err, ErrDecoderUnavailable)
}
