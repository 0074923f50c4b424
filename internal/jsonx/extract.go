// Package jsonx extracts a JSON value from free-form model output.
// Model responses are not guaranteed to be bare JSON: they may be wrapped
// in prose, fenced code blocks, or carry trailing commentary.
package jsonx

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseError reports that no JSON value could be extracted. Raw carries the
// original text for diagnostics.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	preview := e.Raw
	if len(preview) > 120 {
		preview = preview[:120] + "..."
	}
	return fmt.Sprintf("jsonx: no valid JSON found in response: %q", preview)
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*\n?(.*?)\n?```")

// Extract returns the first JSON value found in text. Attempts, in order:
// the whole trimmed text, the inner text of a fenced code block, and the
// widest {...} and [...] spans. A substring that happens to parse as valid
// JSON is accepted even if it was not the intended payload.
func Extract(text string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)

	if raw, ok := tryParse(trimmed); ok {
		return raw, nil
	}

	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		if raw, ok := tryParse(strings.TrimSpace(m[1])); ok {
			return raw, nil
		}
	}

	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		start := strings.Index(trimmed, pair[0])
		end := strings.LastIndex(trimmed, pair[1])
		if start == -1 || end == -1 || end <= start {
			continue
		}
		if raw, ok := tryParse(trimmed[start : end+1]); ok {
			return raw, nil
		}
	}

	return nil, &ParseError{Raw: text}
}

// Unmarshal extracts a JSON value from text and decodes it into v.
func Unmarshal(text string, v any) error {
	raw, err := Extract(text)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func tryParse(s string) (json.RawMessage, bool) {
	if s == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return json.RawMessage(s), true
}
