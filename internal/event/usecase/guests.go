package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"quick-event/internal/event"
)

var (
	reAndWord = regexp.MustCompile(`(?i)\band\b`)
	reEmail   = regexp.MustCompile(`(?i)[A-Z0-9._%+\-]+@[A-Z0-9.\-]+\.[A-Z]{2,}`)
)

// ResolveGuests splits a "with" phrase into guest tokens and resolves each
// against the alias table. Tokens containing "@" contribute every embedded
// email-like substring to both the email and display lists; alias hits map
// to the configured email while the display list keeps the token's original
// casing; everything else is surfaced as unresolved rather than dropped.
// All three lists are de-duplicated case-insensitively in first-seen order.
func ResolveGuests(withText string, aliases event.AliasTable) (emails, display, unresolved []string) {
	for _, tok := range splitGuestTokens(withText) {
		if strings.Contains(tok, "@") {
			for _, e := range reEmail.FindAllString(tok, -1) {
				emails = append(emails, e)
				display = append(display, e)
			}
			continue
		}

		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if email, ok := aliases[strings.ToLower(tok)]; ok {
			emails = append(emails, email)
			display = append(display, tok)
		} else {
			unresolved = append(unresolved, tok)
		}
	}

	return dedupeFold(emails), dedupeFold(display), dedupeFold(unresolved)
}

// splitGuestTokens turns the raw phrase into candidate tokens: "and" becomes
// a comma, commas split first, and comma pieces without an "@" are further
// split on 2+ space runs or a single space right before a capitalized word
// (the heuristic for unspaced name lists like "Mom Dad Grandma").
func splitGuestTokens(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	s = reAndWord.ReplaceAllString(s, ",")

	var out []string
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		if strings.Contains(piece, "@") {
			out = append(out, piece)
			continue
		}
		out = append(out, splitNameList(piece)...)
	}
	return out
}

func splitNameList(s string) []string {
	var parts []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); {
		if !unicode.IsSpace(runes[i]) {
			cur.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j-i >= 2 || (j < len(runes) && unicode.IsUpper(runes[j])) {
			flush()
		} else {
			cur.WriteRune(' ')
		}
		i = j
	}
	flush()
	return parts
}

// dedupeFold removes case-insensitive duplicates preserving first-seen order.
func dedupeFold(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
