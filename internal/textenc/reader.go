package textenc

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// Encoding names the decoder that produced the text.
type Encoding string

const (
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF8BOM Encoding = "utf-8-sig"
	EncodingGBK     Encoding = "gbk"
	EncodingGB18030 Encoding = "gb18030"
	EncodingLatin1  Encoding = "latin-1"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw bytes to text, trying decoders in priority order and
// returning the first that succeeds together with its name. The Latin-1
// fallback has no invalid byte sequences, so Decode always produces text.
func Decode(raw []byte) (string, Encoding) {
	if bytes.HasPrefix(raw, utf8BOM) {
		stripped := raw[len(utf8BOM):]
		if utf8.Valid(stripped) {
			return string(stripped), EncodingUTF8BOM
		}
	} else if utf8.Valid(raw) {
		return string(raw), EncodingUTF8
	}

	if text, ok := decodeWith(simplifiedchinese.GBK, raw); ok {
		return text, EncodingGBK
	}
	if text, ok := decodeWith(simplifiedchinese.GB18030, raw); ok {
		return text, EncodingGB18030
	}

	text, _ := decodeWith(charmap.ISO8859_1, raw)
	return text, EncodingLatin1
}

// ReadFile reads and decodes a file in one step.
func ReadFile(path string) (string, Encoding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	text, enc := Decode(raw)
	return text, enc, nil
}

// decodeWith runs a decoder and reports whether the result is a clean decode.
// The x/text decoders substitute U+FFFD for invalid input rather than
// erroring, so a replacement rune in the output marks the attempt as failed.
func decodeWith(enc encoding.Encoding, raw []byte) (string, bool) {
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	text := string(decoded)
	if strings.ContainsRune(text, utf8.RuneError) {
		return text, false
	}
	return text, true
}
