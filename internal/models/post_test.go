package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := map[string]struct {
		title string
		want  string
	}{
		"punctuation and year":     {"Hello, World! 2024", "hello-world-2024"},
		"already clean":            {"my-post", "my-post"},
		"uppercase":                {"Building APIs", "building-apis"},
		"multiple spaces":          {"a   b", "a-b"},
		"hyphen surrounded spaces": {"a - b", "a-b"},
		"leading trailing space":   {"  padded title  ", "padded-title"},
		"only punctuation":         {"!!!", ""},
		"empty":                    {"", ""},
		"unicode stripped":         {"Caffè & Code", "caff-code"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}
