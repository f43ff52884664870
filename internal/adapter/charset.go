package adapter

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

var (
	utf16BEBOM = []byte{0xFE, 0xFF}
	utf16LEBOM = []byte{0xFF, 0xFE}
)

// charset is one step of the decoding fallback chain.
type charset struct {
	name   string
	decode func(content []byte) (string, bool)
}

// charsetChain is tried in order; the first charset that decodes the whole
// file wins. UTF-8 accepts anything not starting with a UTF-16 byte order
// mark, so the UTF-16 steps only see files that carry one.
var charsetChain = []charset{
	{name: "UTF-8", decode: decodeUTF8},
	{name: "UTF-16", decode: decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM))},
	{name: "UTF-16BE", decode: decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM))},
	{name: "UTF-16LE", decode: decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))},
	{name: "US-ASCII", decode: decodeASCII},
}

// DecodeSource converts raw file bytes to UTF-8 text using the fallback
// chain UTF-8, UTF-16, UTF-16BE, UTF-16LE, US-ASCII. It returns the text and
// the name of the charset that succeeded, or model.ErrUndecodable.
func DecodeSource(content []byte) (string, string, error) {
	for _, cs := range charsetChain {
		if text, ok := cs.decode(content); ok {
			return text, cs.name, nil
		}
	}

	return "", "", m.ErrUndecodable
}

// decodeUTF8 drops a UTF-8 byte order mark and replaces invalid sequences,
// such as Latin-1 bytes in comments, with U+FFFD.
func decodeUTF8(content []byte) (string, bool) {
	if bytes.HasPrefix(content, utf16BEBOM) || bytes.HasPrefix(content, utf16LEBOM) {
		return "", false
	}

	out, err := unicode.UTF8BOM.NewDecoder().Bytes(content)
	if err != nil {
		return "", false
	}

	return string(out), true
}

func decodeWith(enc encoding.Encoding) func([]byte) (string, bool) {
	return func(content []byte) (string, bool) {
		if len(content)%2 != 0 {
			return "", false
		}

		out, err := enc.NewDecoder().Bytes(content)
		if err != nil || !plausibleText(out) {
			return "", false
		}

		return string(out), true
	}
}

func decodeASCII(content []byte) (string, bool) {
	for _, b := range content {
		if b >= utf8.RuneSelf {
			return "", false
		}
	}

	return string(content), true
}

// plausibleText rejects decodings that produced replacement runes or
// control characters other than ordinary whitespace.
func plausibleText(text []byte) bool {
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		if r == utf8.RuneError {
			return false
		}

		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' && r != '\f' {
			return false
		}

		text = text[size:]
	}

	return true
}
