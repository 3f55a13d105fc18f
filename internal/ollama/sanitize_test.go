package ollama

import "testing"

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", "plain text", "plain text"},
		{"bare fence", "```\nfoo\nbar\n```", "foo\nbar"},
		{"language fence", "```json\n{\"hunks\":[]}\n```", "{\"hunks\":[]}"},
		{"fence with prose around it", "Here you go:\n```python\nx = 1\n```\nHope that helps.", "x = 1"},
		{"unclosed fence left alone", "```json\n{\"hunks\":[]}", "```json\n{\"hunks\":[]}"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanResponse(tt.in); got != tt.want {
				t.Errorf("CleanResponse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
