package llm

import (
	"regexp"
	"strings"
)

// MaxPromptChars is how much cleaned CV text is sent to the model.
const MaxPromptChars = 4000

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	rePhone      = regexp.MustCompile(`[\+\(]?[1-9][0-9 .\-\(\)]{8,}[0-9]`)
	reEmail      = regexp.MustCompile(`\S+@\S+\.\S+`)
	reURL        = regexp.MustCompile(`http\S+|www\.\S+`)

	reEmailStrict = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	reNameToken   = regexp.MustCompile(`^[\p{L}][\p{L}'.\-]*$`)
)

// cleanText collapses whitespace and masks phone numbers, emails and URLs
// so contact details are never sent to the model.
func cleanText(text string) string {
	text = reWhitespace.ReplaceAllString(text, " ")
	text = rePhone.ReplaceAllString(text, "[PHONE]")
	text = reEmail.ReplaceAllString(text, "[EMAIL]")
	text = reURL.ReplaceAllString(text, "[URL]")
	return strings.TrimSpace(text)
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// contactDetails pulls name, email and phone from the raw text.
// The name is the first line made of two to four name-like words.
func contactDetails(raw string) (name, email, phone string) {
	email = reEmailStrict.FindString(raw)
	phone = strings.TrimSpace(rePhone.FindString(raw))

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "\f", ""))
		if line == "" {
			continue
		}
		if isNameLine(line) {
			name = strings.Join(strings.Fields(line), " ")
		}
		break
	}
	return name, email, phone
}

func isNameLine(line string) bool {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if !reNameToken.MatchString(w) {
			return false
		}
	}
	return true
}
