package llm

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// Titles recognised by rule-based extraction.
var (
	professionalTitles = []string{
		"AI and Embedded Systems Intern",
		"Junior Electrical Engineer",
		"Software Engineering Intern",
		"Research Assistant",
		"Teaching Assistant",
	}

	leadershipTitles = []string{
		"Senior Administrative Sub-Warden",
		"Sub Warden",
		"Head Mentor",
		"Faculty Mentor",
		"Class Representative",
		"Tutor",
	}
)

// ruleBased extracts what it can without a model: known titles found
// anywhere in the text and degree names matched by degreePatterns.
func ruleBased(text string) *domain.ExtractedRecord {
	rec := &domain.ExtractedRecord{
		Experience: matchTitles(text, professionalTitles),
		Leadership: matchTitles(text, leadershipTitles),
		Education:  []string{},
	}

	var degrees []string
	for _, re := range degreePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			degrees = append(degrees, trimDegree(m[1]))
		}
	}
	rec.Education = cleanList(degrees)
	return rec
}

func matchTitles(text string, titles []string) []string {
	out := []string{}
	for _, title := range titles {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(title) + `\b`)
		if re.MatchString(text) {
			out = append(out, title)
		}
	}
	return out
}

// trimDegree keeps the first six words of a degree match.
// [A-Za-z\s]+ runs on into the next section of flattened text.
func trimDegree(s string) string {
	words := strings.Fields(s)
	if len(words) > 6 {
		words = words[:6]
	}
	return strings.Join(words, " ")
}
