package langdetect_test

import (
	"testing"

	"github.com/yaklabco/gomdedit/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", "text"},
		{"whitespace only", "  \n\t\n", "text"},
		{"go package clause", "package main\n\nfunc main() {}\n", "go"},
		{"html doctype", "<!doctype html>\n<html></html>\n", "html"},
		{"html tag", "<html lang=\"en\">\n", "html"},
		{"dockerfile", "FROM alpine:3.20\nRUN apk add curl\n", "dockerfile"},
		{"json object", "{\"key\": \"value\"}\n", "json"},
		{"json array", "[{\"a\": 1}]\n", "json"},
		{"sql select", "SELECT id FROM users;\n", "sql"},
		{"sql lowercase", "select * from t\n", "sql"},
		{"bash shebang", "#!/bin/bash\necho hi\n", "bash"},
		{"python shebang", "#!/usr/bin/env python\nprint(1)\n", "python"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.Detect([]byte(testCase.content)); got != testCase.want {
				t.Errorf("Detect(%q) = %q, want %q", testCase.content, got, testCase.want)
			}
		})
	}
}

func TestDetect_AlwaysLowercase(t *testing.T) {
	t.Parallel()

	samples := []string{
		"package x\n",
		"#!/bin/sh\n",
		"plain prose with nothing special",
		"SELECT 1;",
	}
	for _, sample := range samples {
		got := langdetect.Detect([]byte(sample))
		if got == "" {
			t.Errorf("Detect(%q) returned empty, want a tag or text", sample)
		}
		for _, r := range got {
			if r >= 'A' && r <= 'Z' {
				t.Errorf("Detect(%q) = %q, want lowercase", sample, got)
			}
		}
	}
}
