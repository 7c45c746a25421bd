package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrNoJSON is returned when the model reply contains no JSON object.
var ErrNoJSON = errors.New("no valid JSON found in LLM response")

var reJSONObject = regexp.MustCompile(`\{[\s\S]*\}`)

var listFields = []string{"experience", "leadership", "education"}

// extractionSchema describes the reply the extraction prompt asks for.
// List items are not typed here; non-string items are dropped later.
func extractionSchema() map[string]any {
	list := map[string]any{"type": "array"}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"experience":      list,
			"leadership":      list,
			"education":       list,
			"profile_summary": map[string]any{"type": "string"},
		},
		"required": []string{"experience", "leadership", "profile_summary", "education"},
	}
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func replySchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		b, err := json.Marshal(extractionSchema())
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("extraction.json", bytes.NewReader(b)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("extraction.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// parseReply finds the JSON object in a model reply, fills null lists and
// validates it. The first '{' to the last '}' is tried first, then the
// reply with markdown fences removed.
func parseReply(reply string) (map[string]any, error) {
	reply = strings.TrimSpace(reply)

	candidate := reJSONObject.FindString(reply)
	if candidate == "" {
		candidate = strings.TrimSpace(strings.NewReplacer("```json", "", "```", "").Replace(reply))
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(candidate), &m); err != nil || m == nil {
		return nil, ErrNoJSON
	}

	for _, k := range listFields {
		if v, ok := m[k]; ok && v == nil {
			m[k] = []any{}
		}
	}
	if v, ok := m["profile_summary"]; ok && v == nil {
		m["profile_summary"] = ""
	}

	schema, err := replySchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(m); err != nil {
		return nil, fmt.Errorf("json does not match schema: %w", err)
	}
	return m, nil
}

// stringItems keeps the string elements of a decoded JSON array.
func stringItems(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
