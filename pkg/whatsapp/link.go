// Package whatsapp builds wa.me deep links for the order hand-off. It only
// constructs URLs; opening them stays with the caller.
package whatsapp

import (
	"net/url"
	"strings"
)

// DefaultNumber is used when no destination is supplied or the supplied one
// normalizes to nothing.
const DefaultNumber = "+5491127797320"

const baseURL = "https://wa.me/"

// NormalizeNumber strips every non-digit character, including a leading plus.
func NormalizeNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link builds a wa.me URL for the given destination. An empty text yields the
// bare link; otherwise the text is percent-encoded into the text parameter.
func Link(number, text string) string {
	digits := NormalizeNumber(number)
	if digits == "" {
		digits = NormalizeNumber(DefaultNumber)
	}
	base := baseURL + digits
	if text == "" {
		return base
	}
	return base + "?text=" + encodeText(text)
}

// encodeText percent-encodes like encodeURIComponent: spaces become %20, not
// the query-form plus sign.
func encodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
