package llm

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// MaxSummaryChars caps the profile summary.
const MaxSummaryChars = 250

var reListMarker = regexp.MustCompile(`^(?:-|\*|\d+\.)\s*`)

// degreePatterns pick the degree name out of a longer education line.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(BSc\s+in\s+[A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(B\.?Eng\s+in\s+[A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(Bachelor\s+of\s+[A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(Honors?\s+in\s+[A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)([A-Za-z]+\s+Degree\s+in\s+[A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(Mechatronics\s+Engineering)`),
	regexp.MustCompile(`(?i)(Final\s+year\s+\(Honors\)\s+in\s+[A-Za-z\s]+)`),
}

// leadershipKeywords mark an experience item as a leadership position.
var leadershipKeywords = []string{
	"mentor", "tutor", "warden", "representative", "chair", "president", "sub-warden",
}

// cleanList strips list markers, collapses spaces and drops
// case-insensitive duplicates, keeping first occurrences.
func cleanList(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		s := reListMarker.ReplaceAllString(strings.TrimSpace(item), "")
		s = strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// degreeNames reduces each education line to its degree name when one of
// degreePatterns matches; other lines are kept as they are.
func degreeNames(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		name := item
		for _, re := range degreePatterns {
			if m := re.FindStringSubmatch(item); m != nil {
				name = strings.TrimSpace(m[1])
				break
			}
		}
		out = append(out, name)
	}
	return out
}

func isLeadership(item string) bool {
	lower := strings.ToLower(item)
	for _, kw := range leadershipKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// separateLeadership moves leadership-keyword items out of experience.
// An item already listed under leadership is dropped from experience.
func separateLeadership(experience, leadership []string) ([]string, []string) {
	have := make(map[string]struct{}, len(leadership))
	for _, l := range leadership {
		have[strings.ToLower(l)] = struct{}{}
	}

	exp := make([]string, 0, len(experience))
	lead := append([]string(nil), leadership...)
	for _, item := range experience {
		if !isLeadership(item) {
			exp = append(exp, item)
			continue
		}
		if _, ok := have[strings.ToLower(item)]; !ok {
			lead = append(lead, item)
			have[strings.ToLower(item)] = struct{}{}
		}
	}
	return exp, lead
}

// postProcess turns a validated model reply into a record.
func postProcess(reply map[string]any) *domain.ExtractedRecord {
	experience := cleanList(stringItems(reply["experience"]))
	leadership := cleanList(stringItems(reply["leadership"]))
	education := cleanList(degreeNames(cleanList(stringItems(reply["education"]))))

	summary, _ := reply["profile_summary"].(string)
	summary = truncateRunes(strings.TrimSpace(summary), MaxSummaryChars)

	experience, leadership = separateLeadership(experience, leadership)

	return &domain.ExtractedRecord{
		Experience:     cleanList(experience),
		Leadership:     cleanList(leadership),
		ProfileSummary: summary,
		Education:      education,
	}
}
