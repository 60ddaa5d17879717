package common

import (
	"strings"
	"time"

	"github.com/rivo/uniseg"
	"golang.org/x/text/language"
)

// ExcerptLength is how many characters of content a card shows.
const ExcerptLength = 150

// Excerpt returns the first n user-perceived characters of s followed by
// "...". The ellipsis is always appended, even for short content.
func Excerpt(s string, n int) string {
	if n <= 0 {
		return "..."
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	return b.String() + "..."
}

// Date layouts by locale convention.
const (
	layoutUS     = "1/2/2006"
	layoutDMY    = "02/01/2006"
	layoutDotted = "02.01.2006"
	layoutDashed = "2-1-2006"
	layoutYMD    = "2006/01/02"
	layoutISO    = "2006-01-02"
)

// Short-date conventions for a small set of common locales only, not CLDR.
// Languages missing here fall back to ISO in DateLayout.
var (
	dottedBases = map[string]bool{
		"de": true, "ru": true, "pl": true, "cs": true, "fi": true, "nb": true,
		"no": true, "da": true, "tr": true, "uk": true, "ro": true, "sk": true,
	}
	dmyBases = map[string]bool{
		"fr": true, "es": true, "it": true, "pt": true, "el": true, "id": true, "vi": true,
	}
	ymdBases = map[string]bool{
		"ja": true, "zh": true, "ko": true,
	}
)

// ParseLocale turns a BCP 47 tag or a POSIX locale ("de_DE.UTF-8") into a
// language tag. Unknown, empty, "C" and "POSIX" locales are undetermined.
func ParseLocale(raw string) language.Tag {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || raw == "C" || raw == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// DateLayout picks the short date layout conventional for tag.
// Undetermined locales get the en-US layout, matching a browser default.
func DateLayout(tag language.Tag) string {
	if tag == language.Und {
		return layoutUS
	}
	base, _ := tag.Base()
	region, _ := tag.Region()
	b := base.String()

	switch {
	case b == "en":
		switch region.String() {
		case "US", "ZZ", "PH":
			return layoutUS
		case "CA", "ZA":
			return layoutISO
		}
		return layoutDMY
	case b == "nl":
		return layoutDashed
	case b == "sv" || b == "lt":
		return layoutISO
	case dottedBases[b]:
		return layoutDotted
	case dmyBases[b]:
		return layoutDMY
	case ymdBases[b]:
		return layoutYMD
	}
	return layoutISO
}

// FormatDate renders t as a local-time short date for tag. Zero times
// render as an empty string.
func FormatDate(t time.Time, tag language.Tag) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(DateLayout(tag))
}
