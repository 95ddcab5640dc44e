package transcript

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidText is returned when the source is not valid in the selected encoding.
var ErrInvalidText = errors.New("invalid text for encoding")

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// decodeText converts raw bytes to UTF-8. A UTF-8 or UTF-16 byte order mark
// overrides label; an empty label means UTF-8.
func decodeText(raw []byte, label string) (string, error) {
	enc, name, err := lookupEncoding(label)
	if err != nil {
		return "", err
	}

	utf16BOM := bytes.HasPrefix(raw, bomUTF16BE) || bytes.HasPrefix(raw, bomUTF16LE)
	if !utf16BOM && (name == "utf-8" || bytes.HasPrefix(raw, bomUTF8)) {
		// The UTF-8 decoder substitutes U+FFFD for bad bytes instead of failing.
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("%w utf-8", ErrInvalidText)
		}
	}

	decoder := unicode.BOMOverride(enc.NewDecoder())
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), decoder))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

func lookupEncoding(label string) (encoding.Encoding, string, error) {
	if label == "" {
		return unicode.UTF8, "utf-8", nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	return enc, name, nil
}
