package naming

import (
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SanitizedSnake converts a vendor identifier to snake_case and repairs
// spellings that are not valid identifiers: a leading digit gets an
// underscore prefix and a result that collides with a Go keyword gets an
// underscore suffix.
func SanitizedSnake(s string) string {
	parts := words(s)
	for i, w := range parts {
		parts[i] = strings.ToLower(w)
	}

	out := strings.Join(parts, "_")
	if startsWithDigit(s) {
		out = "_" + out
	}

	if token.IsKeyword(out) {
		out += "_"
	}

	return out
}

// SanitizedPascal converts a vendor identifier to PascalCase. A leading
// digit gets an "X" prefix so the identifier stays exported.
func SanitizedPascal(s string) string {
	title := cases.Title(language.English)

	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(title.String(strings.ToLower(w)))
	}

	out := b.String()
	if startsWithDigit(s) {
		out = "X" + out
	}

	return out
}

// Respace collapses every whitespace run in s to a single space.
func Respace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// words splits an identifier into its word parts. Separator characters end
// a word, as does an uppercase letter after a lowercase letter or digit,
// and the last capital of an all-caps run followed by a lowercase letter.
func words(s string) []string {
	var out []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = nil
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
			continue
		case unicode.IsUpper(r) && i > 0:
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) ||
				(unicode.IsUpper(prev) && nextIsLower) {
				flush()
			}
		}

		cur = append(cur, r)
	}
	flush()

	return out
}
