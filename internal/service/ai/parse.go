package ai

import (
	"encoding/json"
	"strings"
)

// DecodeJSONObject decodes the JSON object embedded in model output into v.
// Markdown code fences and prose around the object are tolerated. It reports
// false when nothing decodable was found; v is then left untouched.
func DecodeJSONObject(content string, v any) bool {
	s := strings.TrimSpace(content)
	if s == "" {
		return false
	}
	if json.Unmarshal([]byte(s), v) == nil {
		return true
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return false
	}
	return json.Unmarshal([]byte(s[start:end+1]), v) == nil
}
