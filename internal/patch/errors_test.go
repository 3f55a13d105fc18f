package patch

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindMalformed, "malformed_patch"},
		{KindAmbiguous, "ambiguous_match"},
		{KindNotFound, "not_found"},
		{KindOverlap, "overlapping_hunks"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorIs(t *testing.T) {
	err := notFoundErr(3)

	if !errors.Is(err, &Error{Kind: KindNotFound}) {
		t.Error("errors.Is should match on kind alone")
	}
	if !errors.Is(err, &Error{Kind: KindNotFound, Hunk: 3}) {
		t.Error("errors.Is should match on kind and hunk")
	}
	if errors.Is(err, &Error{Kind: KindNotFound, Hunk: 1}) {
		t.Error("errors.Is should not match a different hunk")
	}
	if errors.Is(err, &Error{Kind: KindAmbiguous}) {
		t.Error("errors.Is should not match a different kind")
	}
}

func TestErrorAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("apply patch: %w", ambiguousErr(2, MatchTolerant))

	var perr *Error
	if !errors.As(wrapped, &perr) {
		t.Fatal("errors.As failed through wrapping")
	}
	if perr.Kind != KindAmbiguous || perr.Hunk != 2 {
		t.Errorf("got kind=%v hunk=%d", perr.Kind, perr.Hunk)
	}
}
