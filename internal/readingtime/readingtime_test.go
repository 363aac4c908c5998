package readingtime

import (
	"strings"
	"testing"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 0},
		{name: "whitespace only", content: "  \n\t ", want: 0},
		{name: "single word", content: "hello", want: 1},
		{name: "sentence", content: "the quick brown fox", want: 4},
		{name: "extra whitespace", content: "  a\n\nb\tc  ", want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.content); got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}
}

func TestMinutes(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{name: "zero words", words: 0, want: 0},
		{name: "short note", words: 50, want: 1},
		{name: "exactly one minute", words: 200, want: 1},
		{name: "just over one minute", words: 201, want: 2},
		{name: "long article", words: 1000, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tt.words))
			if got := Minutes(content); got != tt.want {
				t.Errorf("Minutes(%d words) = %d, want %d", tt.words, got, tt.want)
			}
		})
	}
}
