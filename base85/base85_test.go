package base85

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeVectors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "hello", want: "Xk~0{Zv"},
		{in: "1234", want: "F)}kW"},
		{in: "\x00\x00\x00\x00", want: "00000"},
	}

	for _, test := range tests {
		require.Equal(t, test.want, Encode([]byte(test.in)), "input %q", test.in)
	}

	require.Equal(t, strings.Repeat("0", 80), Encode(make([]byte, 64)))
}

func TestRoundTrip(t *testing.T) {
	for n := 0; n <= 9; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(37*i + 11)
		}
		decoded, err := Decode(Encode(src))
		require.NoError(t, err)
		require.Equal(t, src, decoded, "length %d", n)
	}
}

func TestDecodeErrors(t *testing.T) {
	// '"' is not in the RFC 1924 alphabet
	_, err := Decode(`F)}k"`)
	require.Error(t, err)

	// a trailing group of one character can never decode to bytes
	_, err = Decode("Xk~0{Z")
	require.Error(t, err)

	// five max symbols exceed the 32-bit group space
	_, err = Decode("~~~~~")
	require.Error(t, err)
}
