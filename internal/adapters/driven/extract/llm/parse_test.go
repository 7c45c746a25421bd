package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply(t *testing.T) {
	valid := `{"experience":["A"],"leadership":[],"profile_summary":"S","education":[]}`

	tests := []struct {
		name    string
		reply   string
		wantErr bool
	}{
		{"bare object", valid, false},
		{"surrounded by prose", "Result:\n" + valid + "\nHope this helps.", false},
		{"fenced", "```json\n" + valid + "\n```", false},
		{"null lists filled", `{"experience":null,"leadership":null,"profile_summary":null,"education":null}`, false},
		{"extra fields allowed", `{"experience":[],"leadership":[],"profile_summary":"","education":[],"skills":["Go"]}`, false},
		{"empty", "", true},
		{"not json", "no braces here", true},
		{"broken json", `{"experience": [`, true},
		{"missing summary", `{"experience":[],"leadership":[],"education":[]}`, true},
		{"summary not string", `{"experience":[],"leadership":[],"profile_summary":3,"education":[]}`, true},
		{"array at top level", `["experience"]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := parseReply(tt.reply)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, m, "experience")
		})
	}
}

func TestParseReply_NoJSON(t *testing.T) {
	_, err := parseReply("nothing useful")

	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestStringItems(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, stringItems([]any{"a", 1.0, nil, "b"}))
	assert.Nil(t, stringItems("a"))
}

func TestPostProcess(t *testing.T) {
	reply := map[string]any{
		"experience":      []any{"- Software Engineer", "software engineer", "Head Mentor", "  1. Data   Analyst"},
		"leadership":      []any{"Head Mentor", "* Class Representative"},
		"profile_summary": strings.Repeat("x", 300),
		"education":       []any{"Graduated with a BSc in Computer Science", "BSc in Computer Science", "Matric"},
	}

	rec := postProcess(reply)

	assert.Equal(t, []string{"Software Engineer", "Data Analyst"}, rec.Experience)
	assert.Equal(t, []string{"Head Mentor", "Class Representative"}, rec.Leadership)
	assert.Equal(t, []string{"BSc in Computer Science", "Matric"}, rec.Education)
	assert.Len(t, rec.ProfileSummary, MaxSummaryChars)
}

func TestCleanList(t *testing.T) {
	got := cleanList([]string{"", "  ", "* Chair", "chair", "3. Treasurer", "-Secretary"})

	assert.Equal(t, []string{"Chair", "Treasurer", "Secretary"}, got)
}

func TestDegreeNames(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Completed BSc in Physics", "BSc in Physics"},
		{"B.Eng in Civil", "B.Eng in Civil"},
		{"University of X, Bachelor of Arts", "Bachelor of Arts"},
		{"Honours in Economics", "Honours in Economics"},
		{"Honor in Law", "Honor in Law"},
		{"Final year (Honors) in Mechatronics", "Final year (Honors) in Mechatronics"},
		{"Matric certificate", "Matric certificate"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, degreeNames([]string{tt.in}))
		})
	}
}

func TestSeparateLeadership(t *testing.T) {
	exp, lead := separateLeadership(
		[]string{"Engineer", "Student Representative", "Club President"},
		[]string{"club president"},
	)

	assert.Equal(t, []string{"Engineer"}, exp)
	assert.Equal(t, []string{"club president", "Student Representative"}, lead)
}
