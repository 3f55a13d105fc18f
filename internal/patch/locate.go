package patch

import "strings"

// MatchMode selects how line contents are compared while locating a hunk.
type MatchMode int

const (
	// MatchExact compares tokenized content fields directly.
	MatchExact MatchMode = iota

	// MatchTolerant trims residual outer whitespace before comparing.
	// Tokenization already removes spaces and tabs at the line
	// boundaries, so this only differs from MatchExact for other
	// Unicode whitespace the tokenizer leaves in place.
	MatchTolerant
)

func (m MatchMode) String() string {
	if m == MatchTolerant {
		return "tolerant"
	}
	return "exact"
}

// Locate returns every 0-based start index where search matches a
// contiguous run of lines under mode. An empty search block never
// matches: a hunk must name at least one line.
func Locate(lines, search []Line, mode MatchMode) []int {
	if len(search) == 0 {
		return nil
	}
	maxStart := len(lines) - len(search)
	if maxStart < 0 {
		return nil
	}
	var matches []int
	for start := 0; start <= maxStart; start++ {
		ok := true
		for offset, s := range search {
			if !contentEqual(lines[start+offset].Content, s.Content, mode) {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, start)
		}
	}
	return matches
}

func contentEqual(a, b string, mode MatchMode) bool {
	if mode == MatchTolerant {
		return strings.TrimSpace(a) == strings.TrimSpace(b)
	}
	return a == b
}
