package tag

import "github.com/landru27/gonbt/mutf8"

// String is a two-form string tag: the common case is valid text (Utf8),
// but a payload that fails to decode as Modified UTF-8 is preserved as
// raw bytes (Bytes) so a subsequent encode reproduces it byte-for-byte.
// The two forms are kept distinct rather than collapsed into one byte
// buffer because equality, and the choice of wire form on encode, depend
// on which one a given value is.
type String struct {
	text  string
	raw   []byte
	isRaw bool
}

// StringFromText builds a String in its text form.
func StringFromText(s string) String {
	return String{text: s}
}

// StringFromBytes builds a String in its raw form, for a payload that did
// not decode as valid Modified UTF-8.
func StringFromBytes(b []byte) String {
	raw := make([]byte, len(b))
	copy(raw, b)

	return String{raw: raw, isRaw: true}
}

// Type implements Tag.
func (String) Type() Type { return TypeString }

// IsRaw reports whether s holds the raw-bytes form.
func (s String) IsRaw() bool {
	return s.isRaw
}

// Text returns the text form and true, or "" and false if s is raw.
func (s String) Text() (string, bool) {
	if s.isRaw {
		return "", false
	}

	return s.text, true
}

// RawBytes returns the raw byte form and true, or nil and false if s holds
// text.
func (s String) RawBytes() ([]byte, bool) {
	if !s.isRaw {
		return nil, false
	}

	return s.raw, true
}

// Lossy returns a displayable string regardless of form: the text value
// directly, or a best-effort decode of the raw bytes (falling back to
// Go's own lossy UTF-8 conversion if even that fails).
func (s String) Lossy() string {
	if !s.isRaw {
		return s.text
	}

	if decoded, ok := mutf8.Decode(s.raw); ok {
		return decoded
	}

	return string(s.raw)
}

// EncodedBytes returns the Modified UTF-8 payload this string writes to
// the wire: the raw bytes verbatim for the Bytes form, or a fresh
// Modified UTF-8 encoding of the text form.
func (s String) EncodedBytes() []byte {
	if s.isRaw {
		return s.raw
	}

	return mutf8.Encode(s.text)
}
