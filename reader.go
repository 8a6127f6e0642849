package main

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// utf8BOM is the byte-order marker commonly prepended by Windows tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodePermissive converts raw file bytes to a string the way a tolerant
// text reader would: an optional UTF-8 BOM is skipped and bytes that do not
// form valid UTF-8 are dropped. Most CSV exports in the wild are plain
// ASCII, so the valid case is the fast path.
//
// ErrEncoding is returned only when a non-empty file decodes to nothing,
// which means the content was not text at all.
func decodePermissive(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid byte - drop it and keep going
			i++
			continue
		}
		b.Write(raw[i : i+size])
		i += size
	}

	decoded := b.String()
	if len(raw) > 0 && decoded == "" {
		return "", ErrEncoding
	}
	return decoded, nil
}
