// Package langdetect guesses the language of code block content. The
// parser uses it to fill in a language for fenced blocks whose fence
// carries no info string, so downstream colorizers still get a usable
// hint.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is returned whenever detection is not confident.
const langText = "text"

// classifierCandidates bounds the go-enry classifier to languages that
// actually show up in fenced blocks.
//
//nolint:gochecknoglobals // Read-only candidate list
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect returns a lowercase fence-tag language for the content, or
// "text" when nothing matches with confidence.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return langText
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// A few unmistakable structural patterns beat the classifier.
	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// detectByPattern recognizes a handful of prefixes that identify a
// language outright.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case bytes.HasPrefix(trimmed, []byte("<!doctype html")),
		bytes.HasPrefix(bytes.ToLower(trimmed), []byte("<!doctype html")),
		bytes.HasPrefix(trimmed, []byte("<html")):
		return "html"
	case bytes.HasPrefix(trimmed, []byte("FROM ")) && bytes.Contains(content, []byte("RUN ")):
		return "dockerfile"
	case (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)):
		return "json"
	case hasSQLPrefix(trimmed):
		return "sql"
	}

	return ""
}

func hasSQLPrefix(trimmed []byte) bool {
	upper := strings.ToUpper(string(trimmed))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE "} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
