package patch

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Hunk is one search/replace instruction within a patch.
type Hunk struct {
	Description  string `json:"description,omitempty"`
	SearchBlock  string `json:"search_block"`
	ReplaceBlock string `json:"replace_block"`
}

// HunkSet is an ordered list of hunks, the unit a patch is applied in.
type HunkSet struct {
	Hunks []Hunk `json:"hunks"`
}

// Placement is the resolved line range a hunk occupies in the buffer,
// together with its tokenized replacement lines. End is exclusive.
type Placement struct {
	Start   int
	End     int
	Replace []Line
}

// ParseHunkSet validates raw JSON into a HunkSet. Any shape violation -
// missing hunks array, hunk missing a block, non-string block - is
// reported as a malformed-patch error before any matching runs.
func ParseHunkSet(data []byte) (*HunkSet, error) {
	var top struct {
		Hunks *[]struct {
			Description  *string `json:"description"`
			SearchBlock  *string `json:"search_block"`
			ReplaceBlock *string `json:"replace_block"`
		} `json:"hunks"`
	}
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, malformedErr("invalid patch JSON: %v", err)
	}
	if top.Hunks == nil {
		return nil, malformedErr("patch must contain a 'hunks' array")
	}
	set := &HunkSet{Hunks: make([]Hunk, 0, len(*top.Hunks))}
	for i, h := range *top.Hunks {
		if h.SearchBlock == nil || h.ReplaceBlock == nil {
			return nil, malformedErr("hunk %d: search_block and replace_block are required", i+1)
		}
		hunk := Hunk{SearchBlock: *h.SearchBlock, ReplaceBlock: *h.ReplaceBlock}
		if h.Description != nil {
			hunk.Description = *h.Description
		}
		set.Hunks = append(set.Hunks, hunk)
	}
	return set, nil
}

// Resolve locates every hunk against lines without mutating anything.
// Each hunk is tried in exact mode first; a unique exact match wins and
// multiple exact matches are ambiguous with no fallback. Only when exact
// mode finds nothing is tolerant mode attempted, which must also be
// unique. onProgress, when non-nil, receives one narration line per
// resolved hunk.
func Resolve(lines []Line, set *HunkSet, onProgress func(string)) ([]Placement, error) {
	narrate := func(format string, args ...any) {
		if onProgress != nil {
			onProgress(fmt.Sprintf(format, args...))
		}
	}

	placements := make([]Placement, 0, len(set.Hunks))
	for i, h := range set.Hunks {
		num := i + 1
		search := splitBlock(h.SearchBlock)
		replace := splitBlock(h.ReplaceBlock)

		matches := Locate(lines, search, MatchExact)
		if len(matches) > 1 {
			return nil, ambiguousErr(num, MatchExact)
		}
		mode := MatchExact
		if len(matches) == 0 {
			matches = Locate(lines, search, MatchTolerant)
			if len(matches) > 1 {
				return nil, ambiguousErr(num, MatchTolerant)
			}
			if len(matches) == 0 {
				return nil, notFoundErr(num)
			}
			mode = MatchTolerant
		}

		start := matches[0]
		end := start + len(search)
		narrate("Hunk %d: %s match at lines %d-%d", num, mode, start+1, end)
		placements = append(placements, Placement{Start: start, End: end, Replace: replace})
	}
	return placements, nil
}

// CheckOverlaps reports whether any two placements intersect. Sorted by
// start, an adjacent-pair test is sufficient: any overlap between
// non-adjacent intervals forces an overlap at some adjacent pair too.
func CheckOverlaps(placements []Placement) bool {
	if len(placements) < 2 {
		return false
	}
	sorted := make([]Placement, len(placements))
	copy(sorted, placements)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].End > sorted[i].Start {
			return true
		}
	}
	return false
}

// apply splices every placement into the buffer, highest start first so
// earlier placements keep valid indices. Replacement lines that fall
// inside the matched range keep that original line's indent and trailing
// whitespace; lines extending past it inherit the indent of the line the
// match started on.
func (b *Buffer) apply(placements []Placement) {
	sorted := make([]Placement, len(placements))
	copy(sorted, placements)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	for _, p := range sorted {
		inherited := ""
		if p.Start < len(b.Lines) {
			inherited = b.Lines[p.Start].Indent
		}
		spliced := make([]Line, len(p.Replace))
		for i, r := range p.Replace {
			if p.Start+i < p.End {
				orig := b.Lines[p.Start+i]
				spliced[i] = Line{Indent: orig.Indent, Content: r.Content, Trailing: orig.Trailing}
			} else {
				spliced[i] = Line{Indent: inherited, Content: r.Content, Trailing: r.Trailing}
			}
		}
		tail := make([]Line, len(b.Lines[p.End:]))
		copy(tail, b.Lines[p.End:])
		b.Lines = append(append(b.Lines[:p.Start], spliced...), tail...)
	}
}

// Apply resolves every hunk against text, validates that no placements
// overlap, splices the replacements in, and returns the patched text.
// Failures leave the input untouched and no partial result is ever
// returned. onProgress is an optional narration sink with no effect on
// the outcome.
func Apply(text string, set *HunkSet, onProgress func(string)) (string, error) {
	buf := NewBuffer(text)

	placements, err := Resolve(buf.Lines, set, onProgress)
	if err != nil {
		return "", err
	}
	if CheckOverlaps(placements) {
		return "", overlapErr()
	}

	buf.apply(placements)
	return buf.String(), nil
}
