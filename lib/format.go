package lib

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	nonSlugPattern    = regexp.MustCompile(`[^a-z0-9]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// FormatPrice renders a decimal amount string as a display price, e.g.
// "1234.5" becomes "$1,234.50". Unparseable amounts render as "$0.00"
// rather than leaking the raw value.
func FormatPrice(amount string) string {
	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		value = 0
	}

	formatted := strconv.FormatFloat(value, 'f', 2, 64)
	parts := strings.SplitN(formatted, ".", 2)
	whole := parts[0]

	negative := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")

	for i := len(whole) - 3; i > 0; i -= 3 {
		whole = whole[:i] + "," + whole[i:]
	}

	result := "$" + whole + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// Slugify lowercases and collapses everything non-alphanumeric into
// single hyphens.
func Slugify(s string) string {
	slug := nonSlugPattern.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// StripHTML removes markup and collapses the remaining whitespace.
// Good enough for plain-text teasers built from rich descriptions.
func StripHTML(s string) string {
	text := htmlTagPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// TruncateText cuts at the last word boundary under max and appends an
// ellipsis. Text under the limit passes through untouched.
func TruncateText(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}

	cut := s[:max]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " .,;:") + "..."
}

// FormatHandle turns a URL handle into a display title, e.g.
// "vista-closet-parts" becomes "Vista Closet Parts".
func FormatHandle(handle string) string {
	words := strings.Split(handle, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// ShortProductTitle drops the shared line prefix from product titles so
// cards and cart rows read "Walk-In Closet" instead of
// "Vista Walk-In Closet".
func ShortProductTitle(title string) string {
	return strings.TrimPrefix(title, "Vista ")
}
