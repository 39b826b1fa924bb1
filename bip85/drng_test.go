package bip85

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drngSeed() []byte {
	seed := make([]byte, 64)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func TestNewDRNGSeedLength(t *testing.T) {
	for _, n := range []int{0, 32, 63, 65, 128} {
		_, err := NewDRNG(make([]byte, n))
		require.ErrorIs(t, err, ErrInvalidSeedLength, "seed length %d", n)
	}

	drng, err := NewDRNG(drngSeed())
	require.NoError(t, err)
	require.Equal(t, 0, drng.Cursor())
}

func TestDRNGReadComposes(t *testing.T) {
	split, err := NewDRNG(drngSeed())
	require.NoError(t, err)
	first := split.Read(10)
	second := split.Read(22)
	require.Equal(t, 32, split.Cursor())

	whole, err := NewDRNG(drngSeed())
	require.NoError(t, err)
	require.Equal(t, append(first, second...), whole.Read(32))
}

func TestDRNGDeterministic(t *testing.T) {
	a, err := NewDRNG(drngSeed())
	require.NoError(t, err)
	b, err := NewDRNG(drngSeed())
	require.NoError(t, err)
	require.Equal(t, a.Read(128), b.Read(128))

	// one flipped seed bit changes the stream
	seed := drngSeed()
	seed[0] ^= 0x01
	c, err := NewDRNG(seed)
	require.NoError(t, err)
	d, err := NewDRNG(drngSeed())
	require.NoError(t, err)
	require.NotEqual(t, c.Read(64), d.Read(64))
}
