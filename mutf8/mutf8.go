// Package mutf8 implements Modified UTF-8 (CESU-8 with an overlong-encoded
// null), the string encoding used on the wire by every String tag.
//
// It differs from standard UTF-8 in two ways: the code point U+0000 is
// encoded as the two-byte overlong sequence C0 80 instead of a single zero
// byte, and code points outside the Basic Multilingual Plane are encoded as
// a UTF-16 surrogate pair, with each surrogate independently encoded as a
// three-byte sequence rather than collapsed into one four-byte sequence.
// Neither transformation is expressible with the standard library's
// unicode/utf8 package, which assumes well-formed UTF-8 throughout.
package mutf8

import "strings"

// Encode converts a Go string to its Modified UTF-8 byte representation.
// The input is assumed to be valid UTF-8; runes are taken via range, which
// substitutes U+FFFD for any ill-formed byte it encounters.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))

	for _, r := range s {
		switch {
		case r == 0:
			out = append(out, 0xC0, 0x80)
		case r < 0x80:
			out = append(out, byte(r))
		case r < 0x800:
			out = append(out, byte(0xC0|(r>>6)), byte(0x80|(r&0x3F)))
		case r < 0x10000:
			out = appendCESU3(out, r)
		default:
			r -= 0x10000
			hi := 0xD800 + (r >> 10)
			lo := 0xDC00 + (r & 0x3FF)
			out = appendCESU3(out, hi)
			out = appendCESU3(out, lo)
		}
	}

	return out
}

func appendCESU3(out []byte, r rune) []byte {
	return append(out, byte(0xE0|(r>>12)), byte(0x80|((r>>6)&0x3F)), byte(0x80|(r&0x3F)))
}

// Decode attempts to interpret b as Modified UTF-8, returning the decoded
// text and true on success. It returns false, without panicking, on any
// malformed input: bad continuation bytes, overlong sequences other than
// the null special case, truncated sequences, or an unpaired surrogate.
// Callers that receive false should fall back to treating the payload as
// opaque bytes rather than text.
func Decode(b []byte) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(b))

	i, n := 0, len(b)
	for i < n {
		c0 := b[i]

		switch {
		case c0 < 0x80:
			sb.WriteByte(c0)
			i++

		case c0&0xE0 == 0xC0:
			if i+1 >= n || b[i+1]&0xC0 != 0x80 {
				return "", false
			}

			c1 := b[i+1]
			if c0 == 0xC0 && c1 == 0x80 {
				sb.WriteByte(0)
				i += 2

				continue
			}

			cp := (rune(c0&0x1F) << 6) | rune(c1&0x3F)
			if cp < 0x80 {
				return "", false
			}

			sb.WriteRune(cp)
			i += 2

		case c0&0xF0 == 0xE0:
			if i+2 >= n || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", false
			}

			cp := (rune(c0&0x0F) << 12) | (rune(b[i+1]&0x3F) << 6) | rune(b[i+2]&0x3F)
			if cp < 0x800 {
				return "", false
			}

			if cp >= 0xD800 && cp <= 0xDBFF {
				r, ok := decodeLowSurrogate(b, i+3, cp)
				if !ok {
					return "", false
				}

				sb.WriteRune(r)
				i += 6

				continue
			}

			if cp >= 0xDC00 && cp <= 0xDFFF {
				return "", false
			}

			sb.WriteRune(cp)
			i += 3

		default:
			return "", false
		}
	}

	return sb.String(), true
}

// decodeLowSurrogate reads the three-byte CESU-8 sequence expected to
// follow a high surrogate at offset i in b, validates it encodes a low
// surrogate, and combines the pair into the supplementary code point it
// represents.
func decodeLowSurrogate(b []byte, i int, hi rune) (rune, bool) {
	if i+2 >= len(b) {
		return 0, false
	}

	d0, d1, d2 := b[i], b[i+1], b[i+2]
	if d0&0xF0 != 0xE0 || d1&0xC0 != 0x80 || d2&0xC0 != 0x80 {
		return 0, false
	}

	lo := (rune(d0&0x0F) << 12) | (rune(d1&0x3F) << 6) | rune(d2&0x3F)
	if lo < 0xDC00 || lo > 0xDFFF {
		return 0, false
	}

	return 0x10000 + ((hi - 0xD800) << 10) + (lo - 0xDC00), true
}
