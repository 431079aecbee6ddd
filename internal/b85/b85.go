// Package b85 implements the RFC 1924 base85 encoding. Its alphabet contains
// no ':' byte, which keeps base85 output distinguishable from the
// "<encoding>:<text>" rendering of decodable byte strings.
package b85

import "fmt"

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~"

var decodeMap [256]byte // 0xFF marks bytes outside the alphabet

func init() {
	for i := range decodeMap {
		decodeMap[i] = 0xFF
	}
	for i := 0; i < len(alphabet); i++ {
		decodeMap[alphabet[i]] = byte(i)
	}
}

// Encode renders src in base85. Input is processed in 4-byte groups of five
// digits each; a trailing group of n bytes emits only n+1 digits.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	out := make([]byte, 0, (len(src)+3)/4*5)
	for i := 0; i < len(src); i += 4 {
		var word uint32
		for j := 0; j < 4; j++ {
			word <<= 8
			if i+j < len(src) {
				word |= uint32(src[i+j])
			}
		}
		n := len(src) - i
		if n > 4 {
			n = 4
		}
		var digits [5]byte
		for j := 4; j >= 0; j-- {
			digits[j] = alphabet[word%85]
			word /= 85
		}
		out = append(out, digits[:n+1]...)
	}
	return string(out)
}

// Decode parses base85 text produced by Encode. A trailing group of m digits
// yields m-1 bytes; missing digits are padded with the highest digit '~'.
func Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return []byte{}, nil
	}
	if len(s)%5 == 1 {
		return nil, fmt.Errorf("b85: invalid length %d", len(s))
	}
	out := make([]byte, 0, (len(s)+4)/5*4)
	for i := 0; i < len(s); i += 5 {
		group := len(s) - i
		if group > 5 {
			group = 5
		}
		var word uint64
		for j := 0; j < 5; j++ {
			d := byte(84)
			if j < group {
				c := s[i+j]
				d = decodeMap[c]
				if d == 0xFF {
					return nil, fmt.Errorf("b85: invalid byte %q", c)
				}
			}
			word = word*85 + uint64(d)
		}
		if word > 0xFFFFFFFF {
			return nil, fmt.Errorf("b85: group value overflows 32 bits")
		}
		quad := [4]byte{byte(word >> 24), byte(word >> 16), byte(word >> 8), byte(word)}
		out = append(out, quad[:group-1]...)
	}
	return out, nil
}
