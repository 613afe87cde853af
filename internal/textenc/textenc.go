// Package textenc resolves user-supplied encoding names to x/text encodings.
//
// Names are matched case-insensitively with '_' treated as '-'. A handful of
// common spellings ("utf8", "latin-1", "utf-16-le", ...) are recognized
// directly; everything else goes through the IANA registry and then the
// WHATWG (HTML) label index.
package textenc

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/example/textkit/internal/core/validation"
)

// Default is the encoding used when none is given.
const Default = "utf-8"

// strictUTF8 passes UTF-8 through unchanged and fails on invalid byte
// sequences instead of substituting U+FFFD.
type strictUTF8 struct{}

func (strictUTF8) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: encoding.UTF8Validator}
}

func (strictUTF8) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: encoding.UTF8Validator}
}

var builtin = map[string]encoding.Encoding{
	"utf-8":      strictUTF8{},
	"utf8":       strictUTF8{},
	"u8":         strictUTF8{},
	"utf-8-sig":  unicode.UTF8BOM,
	"utf-16":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16-le":  unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16le":   unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16-be":  unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-16be":   unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"latin-1":    charmap.ISO8859_1,
	"latin1":     charmap.ISO8859_1,
	"iso-8859-1": charmap.ISO8859_1,
	"cp1252":     charmap.Windows1252,
	"cp1250":     charmap.Windows1250,
	"cp437":      charmap.CodePage437,
}

// Normalize canonicalizes an encoding name for lookup.
// An empty name normalizes to Default.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "-")
	if n == "" {
		return Default
	}
	return n
}

// Lookup returns the encoding registered under name.
// Unknown names yield a validation error.
func Lookup(name string) (encoding.Encoding, error) {
	n := Normalize(name)
	if enc, ok := builtin[n]; ok {
		return enc, nil
	}
	for _, candidate := range []string{strings.TrimSpace(name), n} {
		if enc, err := ianaindex.IANA.Encoding(candidate); err == nil && enc != nil {
			return enc, nil
		}
		if enc, err := htmlindex.Get(candidate); err == nil && enc != nil {
			return enc, nil
		}
	}
	return nil, &validation.Error{
		Field:  "encoding",
		Value:  fmt.Sprintf("%q", name),
		Reason: "is not a known text encoding",
	}
}
