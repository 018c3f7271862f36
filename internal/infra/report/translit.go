package report

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var typographic = strings.NewReplacer(
	"\u201c", `"`, "\u201d", `"`, "\u201e", `"`, "\u201f", `"`, "\u00ab", `"`, "\u00bb", `"`,
	"\u2018", "'", "\u2019", "'", "\u201a", "'", "\u201b", "'", "\u2032", "'", "\u2033", `"`,
	"\u2010", "-", "\u2011", "-", "\u2012", "-", "\u2013", "-", "\u2014", "-", "\u2015", "-", "\u2212", "-",
	"\u2026", "...",
	"\u2022", "*", "\u00b7", "*",
	"\u00a0", " ", "\u2002", " ", "\u2003", " ", "\u2009", " ", "\u202f", " ",
	"\u200b", "", "\ufeff", "",
	"\t", "    ",
)

// Latin1 transliterates typographic punctuation to ASCII and encodes the rest
// as ISO-8859-1. Runes with no Latin-1 form become '?'.
func Latin1(s string) (string, error) {
	s = strings.ToValidUTF8(s, "?")
	// line breaks survive as \n, other control characters are dropped below
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = typographic.Replace(s)
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r < 0x20, r >= 0x7f && r < 0xa0:
			// control characters, including C1 which the core fonts would draw as glyphs
			return -1
		case r > 0xff:
			return '?'
		}
		return r
	}, s)
	return encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).String(s)
}
