package bootgfx

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Charset is the character set of byte strings passed to RenderBytes.
// Boot environments often hand over fixed single-byte strings (firmware
// version tables, BIOS-style banners) rather than UTF-8.
type Charset uint8

const (
	// CharsetLatin1 decodes ISO 8859-1, where every byte is its own
	// code point.
	CharsetLatin1 Charset = iota

	// CharsetCP437 decodes IBM code page 437, the PC BIOS character set
	// with box-drawing glyphs.
	CharsetCP437

	// CharsetUTF8 decodes UTF-8, replacing invalid sequences with U+FFFD.
	CharsetUTF8
)

// String returns the string representation of the charset.
func (c Charset) String() string {
	switch c {
	case CharsetLatin1:
		return "Latin1"
	case CharsetCP437:
		return "CP437"
	case CharsetUTF8:
		return "UTF8"
	default:
		return unknownStr
	}
}

func (c Charset) encoding() (encoding.Encoding, bool) {
	switch c {
	case CharsetLatin1:
		return charmap.ISO8859_1, true
	case CharsetCP437:
		return charmap.CodePage437, true
	case CharsetUTF8:
		return unicode.UTF8, true
	default:
		return nil, false
	}
}

// Decode converts b to a UTF-8 string.
func (c Charset) Decode(b []byte) (string, error) {
	enc, ok := c.encoding()
	if !ok {
		return "", fmt.Errorf("bootgfx: unknown charset %d", c)
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("bootgfx: decode %v: %w", c, err)
	}
	return string(out), nil
}
