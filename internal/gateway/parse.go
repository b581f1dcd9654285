package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
)

// sanitize strips markdown code fences the model sometimes wraps around
// its JSON output.
func sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractObject returns the substring from the first '{' through the
// last '}', discarding any prose around the JSON object. Returns the
// input unchanged when no object delimiters are found.
func extractObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// extractArray is extractObject for top-level JSON arrays.
func extractArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// decodeObject leniently decodes a model response into v: code fences
// and surrounding prose are stripped before unmarshaling.
func decodeObject(raw []byte, v any) error {
	cleaned := extractObject(sanitize(string(raw)))
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	return nil
}

// decodeStringList leniently decodes a model response that should be a
// JSON array of strings. A top-level object is accepted too: the first
// string-array value found inside it is returned.
func decodeStringList(raw []byte) ([]string, error) {
	cleaned := sanitize(string(raw))

	var list []string
	if err := json.Unmarshal([]byte(extractArray(cleaned)), &list); err == nil {
		return list, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(extractObject(cleaned)), &obj); err != nil {
		return nil, fmt.Errorf("decode model output: neither array nor object")
	}
	for _, v := range obj {
		var inner []string
		if err := json.Unmarshal(v, &inner); err == nil {
			return inner, nil
		}
	}
	return nil, fmt.Errorf("decode model output: no string array found")
}
