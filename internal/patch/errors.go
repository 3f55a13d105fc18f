package patch

import "fmt"

// Kind classifies patch failures so callers can react without parsing
// messages.
type Kind int

const (
	// KindMalformed - the patch specification itself is structurally
	// invalid (missing hunks array, hunk missing a required block).
	KindMalformed Kind = iota

	// KindAmbiguous - a hunk's search block matched more than one
	// location under the attempted mode.
	KindAmbiguous

	// KindNotFound - a hunk's search block matched nowhere under
	// either mode.
	KindNotFound

	// KindOverlap - two or more resolved placements intersect.
	KindOverlap
)

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed_patch"
	case KindAmbiguous:
		return "ambiguous_match"
	case KindNotFound:
		return "not_found"
	case KindOverlap:
		return "overlapping_hunks"
	default:
		return "unknown"
	}
}

// Error is a typed patch failure. Hunk is the 1-based hunk number for
// ambiguous/not-found failures and 0 when the failure is not tied to a
// single hunk.
type Error struct {
	Kind    Kind
	Hunk    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is supports errors.Is matching against a bare &Error{Kind: ...} target.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Hunk == 0 || t.Hunk == e.Hunk)
}

func malformedErr(format string, args ...any) *Error {
	return &Error{Kind: KindMalformed, Message: fmt.Sprintf(format, args...)}
}

func ambiguousErr(hunk int, mode MatchMode) *Error {
	return &Error{
		Kind:    KindAmbiguous,
		Hunk:    hunk,
		Message: fmt.Sprintf("hunk %d: ambiguous %s match", hunk, mode),
	}
}

func notFoundErr(hunk int) *Error {
	return &Error{
		Kind:    KindNotFound,
		Hunk:    hunk,
		Message: fmt.Sprintf("hunk %d: search block not found", hunk),
	}
}

func overlapErr() *Error {
	return &Error{Kind: KindOverlap, Message: "overlapping hunks"}
}
