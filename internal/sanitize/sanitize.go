// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

// Package sanitize provides total normalization functions for untrusted
// scalar input. Every function accepts any value, never fails, and degrades
// malformed input to a safe default (empty string or zero) instead of
// returning an error. Output of Text never contains a literal
// '<', '>', '"', '\'' or '/', and '&' only as the lead of an entity.
package sanitize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// htmlReplacements lists the escaped characters in application order.
// '&' must be first so that entities produced by later substitutions are
// not escaped twice.
var htmlReplacements = [...]struct {
	from string
	to   string
}{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
	{"'", "&#x27;"},
	{"/", "&#x2F;"},
}

// Text HTML-escapes a string value and trims surrounding whitespace.
// Non-string input yields an empty string.
func Text(input any) string {
	s, ok := input.(string)
	if !ok {
		return ""
	}

	for _, r := range htmlReplacements {
		s = strings.ReplaceAll(s, r.from, r.to)
	}

	return strings.TrimSpace(s)
}

// Number coerces input to a finite float64. Unparseable, NaN, and infinite
// values yield 0.
func Number(input any) float64 {
	var num float64

	switch v := input.(type) {
	case float64:
		num = v
	case float32:
		num = float64(v)
	case int:
		num = float64(v)
	case int64:
		num = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		num = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		num = parsed
	case bool:
		if v {
			num = 1
		}
	default:
		return 0
	}

	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0
	}

	return num
}

// Email narrows a string to the character set [A-Za-z0-9@._+-], trims it,
// and lowercases it. It does not verify RFC validity. Non-string input
// yields an empty string.
func Email(input any) string {
	s, ok := input.(string)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '@', r == '.', r == '_', r == '+', r == '-':
			b.WriteRune(r)
		}
	}

	return strings.ToLower(strings.TrimSpace(b.String()))
}

// Phone strips every character outside digits, '+', '-', spaces and
// parentheses, then trims. Non-string input yields an empty string.
func Phone(input any) string {
	s, ok := input.(string)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+', r == '-', r == '(', r == ')', r == ' ':
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// Record shallow-copies an arbitrary key→value mapping and applies Text to
// every string-typed value, leaving other values untouched.
func Record(record map[string]any) map[string]any {
	sanitized := make(map[string]any, len(record))
	for key, value := range record {
		if s, ok := value.(string); ok {
			sanitized[key] = Text(s)
			continue
		}
		sanitized[key] = value
	}

	return sanitized
}
