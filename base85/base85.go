// Package base85 implements the RFC 1924 base85 encoding: 4-byte
// big-endian groups mapped to 5 characters of an 85-symbol alphabet.
// Trailing partial groups are zero-padded on encode and the output is
// shortened to one character more than the remaining byte count.
package base85

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const alphabet = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!#$%&()*+-;<=>?@^_`{|}~"

var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = 0xff
	}
	for i := 0; i < len(alphabet); i++ {
		decodeMap[alphabet[i]] = byte(i)
	}
}

func Encode(src []byte) string {
	var out strings.Builder
	out.Grow((len(src) + 3) / 4 * 5)

	for i := 0; i < len(src); i += 4 {
		var chunk [4]byte
		n := copy(chunk[:], src[i:])
		v := binary.BigEndian.Uint32(chunk[:])

		var group [5]byte
		for j := 4; j >= 0; j-- {
			group[j] = alphabet[v%85]
			v /= 85
		}
		out.Write(group[:n+1])
	}
	return out.String()
}

func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/5*4)

	for i := 0; i < len(s); i += 5 {
		end := i + 5
		if end > len(s) {
			end = len(s)
		}
		group := s[i:end]
		n := len(group)
		if n == 1 {
			return nil, fmt.Errorf("base85: truncated group at offset %d", i)
		}

		// pad with the highest symbol, mirroring the zero-padding on encode
		var v uint64
		for j := 0; j < 5; j++ {
			c := byte('~')
			if j < n {
				c = group[j]
			}
			d := decodeMap[c]
			if d == 0xff {
				return nil, fmt.Errorf("base85: invalid byte %q at offset %d", c, i+j)
			}
			v = v*85 + uint64(d)
		}
		if v > 0xffffffff {
			return nil, fmt.Errorf("base85: group overflow at offset %d", i)
		}

		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], uint32(v))
		out = append(out, buf[:n-1]...)
	}
	return out, nil
}
