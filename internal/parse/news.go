package parse

import (
	"encoding/json"
	"strings"

	"github.com/vietcheck/vietcheck/internal/model"
)

// News deserializes the model's JSON answer into validated news items.
// Fail-soft: malformed JSON yields an empty slice, and items that do not
// satisfy the five-field shape are skipped.
func News(raw string) []model.NewsItem {
	raw = stripCodeFence(raw)
	if raw == "" {
		return nil
	}

	var items []model.NewsItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}

	valid := make([]model.NewsItem, 0, len(items))
	for _, item := range items {
		if item.Validate() != nil {
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

// stripCodeFence tolerates answers wrapped in a markdown code fence even
// though the request asks for bare JSON
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
