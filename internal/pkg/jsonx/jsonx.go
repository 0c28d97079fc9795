// Package jsonx recovers JSON values from free-form model output.
//
// Every extractor returns (value, ok). ok is false when nothing usable was
// found; callers decide which fallback to substitute.
package jsonx

import (
	"encoding/json"
	"strings"
)

const fence = "```"

// StripFence removes a leading and trailing triple-backtick fence. A language
// tag on the opening line (```json, ```mermaid) is dropped with it.
func StripFence(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, fence) {
		s = strings.TrimLeft(s, "`")
		if nl := strings.IndexByte(s, '\n'); nl != -1 && isLanguageTag(s[:nl]) {
			s = s[nl+1:]
		} else if nl == -1 && isLanguageTag(s) {
			s = ""
		}
	}

	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "`")
	return strings.TrimSpace(s)
}

func isLanguageTag(line string) bool {
	line = strings.TrimSpace(line)
	for _, r := range line {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '+', r == '.':
		default:
			return false
		}
	}
	return true
}

// ObjectSpan returns the text from the first '{' to the last '}'.
func ObjectSpan(s string) (string, bool) {
	return span(s, '{', '}')
}

// ArraySpan returns the text from the first '[' to the last ']'.
func ArraySpan(s string) (string, bool) {
	return span(s, '[', ']')
}

func span(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

// ExtractObject strips a fence, locates the outermost object and decodes it.
func ExtractObject[T any](raw string) (T, bool) {
	var zero T
	body, ok := ObjectSpan(StripFence(raw))
	if !ok {
		return zero, false
	}
	return decode[T](body)
}

// ExtractArray strips a fence, locates the outermost array and decodes it.
func ExtractArray[T any](raw string) (T, bool) {
	var zero T
	body, ok := ArraySpan(StripFence(raw))
	if !ok {
		return zero, false
	}
	return decode[T](body)
}

// DecodeArray strips a fence and requires the remainder to be a JSON array.
func DecodeArray(raw string) ([]any, error) {
	var v any
	if err := json.Unmarshal([]byte(StripFence(raw)), &v); err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, ErrNotArray
	}
	return arr, nil
}

func decode[T any](body string) (T, bool) {
	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}
