package textnorm

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmpty is returned when the cleaned output contains no tokens.
var ErrEmpty = errors.New("normalized text is empty")

// Line is a single input line after cleaning. Raw keeps the original text
// (trimmed) so downstream heuristics can still see characters the cleaner
// strips, such as the @ in an email address.
type Line struct {
	Raw    string
	Clean  string
	Tokens []string
}

// Normalized is an immutable token view of one document. Token order matches
// original word order; tokens are lowercase with punctuation stripped except
// internal hyphens and the technical characters + # . (so "c++", "c#" and
// "node.js" survive). Stop words are retained; callers that need a
// content-only stream filter against a stop-word set themselves.
type Normalized struct {
	Text   string
	Lines  []Line
	Tokens []string
}

// IsEmpty reports whether the document normalized to nothing.
func (n Normalized) IsEmpty() bool { return len(n.Tokens) == 0 }

// TokenSet returns the set of unique tokens.
func (n Normalized) TokenSet() map[string]struct{} {
	out := make(map[string]struct{}, len(n.Tokens))
	for _, t := range n.Tokens {
		out[t] = struct{}{}
	}
	return out
}

// JoinedTokens returns the token stream as a single space-separated string,
// used for exact phrase containment checks.
func (n Normalized) JoinedTokens() string {
	return strings.Join(n.Tokens, " ")
}

// Normalize cleans raw text into a deterministic token stream. Formatting
// artifact lines (bullet or dash runs, bare page numbers) are dropped;
// line structure is preserved for the section segmenter. Returns ErrEmpty
// when nothing survives cleaning.
func Normalize(raw string) (Normalized, error) {
	var (
		lines  []Line
		tokens []string
		texts  []string
	)

	for _, rawLine := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(rawLine)
		if trimmed == "" {
			continue
		}

		clean := cleanLine(trimmed)
		if clean == "" || isArtifactLine(clean) {
			continue
		}

		lineTokens := strings.Fields(clean)
		line := Line{
			Raw:    trimmed,
			Clean:  clean,
			Tokens: lineTokens,
		}
		lines = append(lines, line)
		tokens = append(tokens, lineTokens...)
		texts = append(texts, clean)
	}

	if len(tokens) == 0 {
		return Normalized{}, ErrEmpty
	}

	return Normalized{
		Text:   strings.Join(texts, "\n"),
		Lines:  lines,
		Tokens: tokens,
	}, nil
}

// cleanLine lowercases and strips punctuation, keeping + # . always and
// hyphens only between alphanumerics ("front-end" stays, "---" dissolves).
func cleanLine(s string) string {
	lowered := strings.ToLower(s)
	runes := []rune(lowered)

	var b strings.Builder
	b.Grow(len(lowered))
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' || r == '#' || r == '.':
			b.WriteRune(r)
		case r == '-':
			if i > 0 && i < len(runes)-1 && isAlnum(runes[i-1]) && isAlnum(runes[i+1]) {
				b.WriteRune(r)
			} else {
				b.WriteByte(' ')
			}
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	for i, f := range fields {
		fields[i] = strings.Trim(f, ".")
	}
	out := strings.Join(fields, " ")
	return strings.TrimSpace(strings.Join(strings.Fields(out), " "))
}

// isArtifactLine reports lines that are pure formatting noise: page-number
// style lines (digits only) or leftover separator fragments.
func isArtifactLine(clean string) bool {
	fields := strings.Fields(clean)
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		if !isDigits(f) {
			return false
		}
	}
	// Every token is a bare number; treat as a page marker only when the
	// line is short. Lines like "2019 2020 2021" inside an experience table
	// are rare enough to accept the loss.
	return len(fields) <= 2
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
