package jsondoc

import (
	"strconv"
	"strings"
)

// Options is a bitmask of serialisation flags.
type Options int

const (
	// PrettyPrint indents output with DefaultIndent.
	PrettyPrint Options = 1 << iota
	// EscapeSlash writes '/' as "\/".
	EscapeSlash
	// EscapeUnicode writes every non-ASCII character as \uXXXX.
	EscapeUnicode
	// EscapeHTML writes '<', '>' and '&' as \u003c, \u003e and \u0026.
	EscapeHTML
	// SortKeys writes map keys in lexical order instead of insertion order.
	SortKeys
)

var optionNames = []struct {
	flag Options
	name string
}{
	{PrettyPrint, "PrettyPrint"},
	{EscapeSlash, "EscapeSlash"},
	{EscapeUnicode, "EscapeUnicode"},
	{EscapeHTML, "EscapeHTML"},
	{SortKeys, "SortKeys"},
}

// Has reports whether every bit of flags is set.
func (o Options) Has(flags Options) bool {
	return o&flags == flags
}

func (o Options) String() string {
	if o == 0 {
		return "0"
	}
	var names []string
	rest := o
	for _, opt := range optionNames {
		if o&opt.flag != 0 {
			names = append(names, opt.name)
			rest &^= opt.flag
		}
	}
	if rest != 0 {
		names = append(names, "0x"+strconv.FormatInt(int64(rest), 16))
	}
	return strings.Join(names, "|")
}
