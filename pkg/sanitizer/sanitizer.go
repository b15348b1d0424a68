package sanitizer

import (
	"html"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	nethtml "golang.org/x/net/html"
)

var strictPolicy = bluemonday.StrictPolicy()

// StripTags removes every HTML/XML tag and keeps only text nodes.
// Returns an empty string when the input cannot be tokenized.
//
// Not an XSS defence on its own; use CleanText for user input.
//
//   - "<p>Hello <strong>World</strong></p>" -> "Hello World"
//   - "Plain text" -> "Plain text"
func StripTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if !strings.Contains(input, "<") {
		return input
	}

	tokenizer := nethtml.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == nethtml.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return ""
		}

		if tt == nethtml.TextToken {
			buf.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.TrimSpace(buf.String())
}

// CleanText prepares user-submitted text for storage: tags are stripped,
// anything bluemonday's strict policy would still reject is removed, entities
// are decoded back to plain characters and the result is truncated to maxRunes
// (0 means unlimited).
func CleanText(input string, maxRunes int) string {
	text := StripTags(input)
	text = strictPolicy.Sanitize(text)
	text = html.UnescapeString(text)
	text = strings.TrimSpace(text)
	if maxRunes > 0 && utf8.RuneCountInString(text) > maxRunes {
		runes := []rune(text)
		text = strings.TrimSpace(string(runes[:maxRunes]))
	}
	return text
}
