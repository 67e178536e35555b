package types

import "strings"

// Locale selects the API subdomain: a lowercase ISO 3166-1 country code
// (or the special value "world") with an optional lowercase ISO 639-1
// language code. The zero value is not meaningful; use DefaultLocale or
// NewLocale.
type Locale struct {
	// CC is the country code.
	CC string
	// LC is the language code; empty means "country only".
	LC string
}

// DefaultLocale returns the "world" locale used when nothing more
// specific is requested.
func DefaultLocale() Locale {
	return Locale{CC: "world"}
}

// NewLocale returns a Locale with the given country code and optional
// language code. An empty country code yields the default locale and the
// language code is dropped.
func NewLocale(cc, lc string) Locale {
	if cc == "" {
		return DefaultLocale()
	}
	return Locale{CC: cc, LC: lc}
}

// ParseLocale parses the subdomain forms "{cc}" and "{cc}-{lc}".
// Empty segments degrade gracefully: "en-" parses as country-only "en",
// while "-us" and "-" parse as the default locale. ParseLocale is total;
// it inverts String for every locale this package can produce.
func ParseLocale(s string) Locale {
	cc, lc, _ := strings.Cut(s, "-")
	return NewLocale(cc, lc)
}

// String renders the subdomain form "{cc}" or "{cc}-{lc}".
func (l Locale) String() string {
	if l.LC != "" {
		return l.CC + "-" + l.LC
	}
	return l.CC
}
