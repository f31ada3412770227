package internal

import "unicode/utf8"

// EscapeFlags selects optional escapes applied when quoting strings.
type EscapeFlags uint8

const (
	EscapeSlash EscapeFlags = 1 << iota
	EscapeUnicode
	EscapeHTML
)

// hexChars contains hex characters for escape sequences
var hexChars = [16]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f',
}

// AppendQuoted appends s to dst as a quoted JSON string.
// Invalid UTF-8 is replaced with U+FFFD.
func AppendQuoted(dst []byte, s string, flags EscapeFlags) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			dst = appendEscapedByte(dst, c, flags)
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case flags&EscapeUnicode != 0:
			dst = appendEscapedRune(dst, r)
		case r == '\u2028' || r == '\u2029':
			dst = appendUnicodeEscape(dst, uint16(r))
		default:
			dst = utf8.AppendRune(dst, r)
		}
	}
	return append(dst, '"')
}

func appendEscapedByte(dst []byte, c byte, flags EscapeFlags) []byte {
	switch c {
	case '"':
		return append(dst, '\\', '"')
	case '\\':
		return append(dst, '\\', '\\')
	case '\b':
		return append(dst, '\\', 'b')
	case '\f':
		return append(dst, '\\', 'f')
	case '\n':
		return append(dst, '\\', 'n')
	case '\r':
		return append(dst, '\\', 'r')
	case '\t':
		return append(dst, '\\', 't')
	case '/':
		if flags&EscapeSlash != 0 {
			return append(dst, '\\', '/')
		}
	case '<', '>', '&':
		if flags&EscapeHTML != 0 {
			return appendUnicodeEscape(dst, uint16(c))
		}
	default:
		if c < 0x20 {
			return appendUnicodeEscape(dst, uint16(c))
		}
	}
	return append(dst, c)
}

// appendEscapedRune writes r as \uXXXX, using a surrogate pair above the BMP.
func appendEscapedRune(dst []byte, r rune) []byte {
	if r <= 0xFFFF {
		return appendUnicodeEscape(dst, uint16(r))
	}
	r -= 0x10000
	dst = appendUnicodeEscape(dst, uint16(0xD800+(r>>10)))
	return appendUnicodeEscape(dst, uint16(0xDC00+(r&0x3FF)))
}

func appendUnicodeEscape(dst []byte, v uint16) []byte {
	return append(dst, '\\', 'u',
		hexChars[v>>12&0xF], hexChars[v>>8&0xF], hexChars[v>>4&0xF], hexChars[v&0xF])
}
