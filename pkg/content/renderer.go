package content

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// RenderContent fills the template for contentTypeID from listing. It is
// total: unknown ids use the generic template and missing fields fall back
// to fixed literals.
func RenderContent(contentTypeID string, listing ListingDetails) string {
	tmpl, ok := templates[contentTypeID]
	if !ok {
		tmpl = genericTemplate
	}
	return placeholders(listing).Replace(tmpl)
}

// RenderAllContent renders every requested type against the same listing.
func RenderAllContent(contentTypeIDs []string, listing ListingDetails) map[string]string {
	out := make(map[string]string, len(contentTypeIDs))
	r := placeholders(listing)
	for _, id := range contentTypeIDs {
		tmpl, ok := templates[id]
		if !ok {
			tmpl = genericTemplate
		}
		out[id] = r.Replace(tmpl)
	}
	return out
}

func placeholders(l ListingDetails) *strings.Replacer {
	highlights := cleanHighlights(l.Highlights)
	if len(highlights) == 0 {
		highlights = FallbackHighlights
	}
	bullets := make([]string, len(highlights))
	for i, h := range highlights {
		bullets[i] = "• " + h
	}

	return strings.NewReplacer(
		"{{address}}", orDefault(strings.TrimSpace(l.Address), FallbackAddress),
		"{{price}}", formatPrice(l.Price),
		"{{bedrooms}}", formatInt(l.Bedrooms, FallbackBedrooms),
		"{{bathrooms}}", formatBathrooms(l.Bathrooms),
		"{{squareFootage}}", formatInt(l.SquareFootage, FallbackSquareFootage),
		"{{highlights}}", strings.Join(bullets, "\n"),
		"{{highlightsInline}}", joinInline(highlights),
		"{{firstHighlight}}", highlights[0],
	)
}

func cleanHighlights(in []string) []string {
	out := make([]string, 0, len(in))
	for _, h := range in {
		if h = strings.TrimSpace(h); h != "" {
			out = append(out, h)
		}
	}
	return out
}

// formatPrice rounds to whole dollars. Values past the int64 range are
// formatted as floats instead of being converted.
func formatPrice(p float64) string {
	if p <= 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return FallbackPrice
	}
	rounded := math.Round(p)
	if rounded >= math.MaxInt64 {
		return "$" + humanize.Commaf(rounded)
	}
	return "$" + humanize.Comma(int64(rounded))
}

func formatInt(n int, fallback string) string {
	if n <= 0 {
		return fallback
	}
	return humanize.Comma(int64(n))
}

func formatBathrooms(b float64) string {
	if b <= 0 {
		return FallbackBathrooms
	}
	return strconv.FormatFloat(b, 'f', -1, 64)
}

// joinInline turns [a b c] into "a, b and c", lowercasing the first letter
// of each item so it reads inside a sentence.
func joinInline(items []string) string {
	lowered := make([]string, len(items))
	for i, it := range items {
		lowered[i] = lowerFirst(it)
	}
	switch len(lowered) {
	case 0:
		return ""
	case 1:
		return lowered[0]
	}
	return strings.Join(lowered[:len(lowered)-1], ", ") + " and " + lowered[len(lowered)-1]
}

// lowerFirst leaves acronyms such as "HOA" alone.
func lowerFirst(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsUpper(first) {
		return s
	}
	if second, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(second) {
		return s
	}
	return string(unicode.ToLower(first)) + s[size:]
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
