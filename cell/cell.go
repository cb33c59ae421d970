package cell

import "strings"

// Value is a tagged union: a variant tag plus an arbitrary payload. The
// zero Value has tag 0 and a nil payload.
type Value struct {
	tag  int
	data any
}

// New constructs a Value with the given tag and payload.
func New(tag int, payload any) Value {
	return Value{tag: tag, data: payload}
}

// Of constructs a Value whose payload's static type is pinned by the
// caller. It exists so construction and As extraction line up on T.
func Of[T any](tag int, payload T) Value {
	return Value{tag: tag, data: payload}
}

// Tag returns the variant tag.
func (v Value) Tag() int { return v.tag }

// Is reports whether the value carries the given tag.
func (v Value) Is(tag int) bool { return v.tag == tag }

// Get returns the payload untyped.
func (v Value) Get() any { return v.data }

// As extracts the payload as T, reporting whether the payload holds
// exactly that type.
func As[T any](v Value) (T, bool) {
	t, ok := v.data.(T)

	return t, ok
}

// Label returns the spreadsheet-style column letter for tags 0..25
// ("A" for 0 through "Z" for 25), and false outside that range.
func Label(tag int) (string, bool) {
	if tag < 0 || tag > 'Z'-'A' {
		return "", false
	}

	return string(rune('A' + tag)), true
}

// TagFor returns the tag for a single column letter, case-insensitive.
func TagFor(label string) (int, bool) {
	if len(label) != 1 {
		return 0, false
	}
	c := strings.ToUpper(label)[0]
	if c < 'A' || c > 'Z' {
		return 0, false
	}

	return int(c - 'A'), true
}
