package abspath

import (
	"errors"
	"fmt"
)

// Construction errors. Both indicate caller bugs (the input should have
// been validated, or combined with a base path via Join) and are never
// retried.
var (
	// ErrEmpty is returned when a path string is required but empty.
	ErrEmpty = errors.New("path is empty")
	// ErrNotRooted is returned when a string must be fully qualified
	// under the target style but is not.
	ErrNotRooted = errors.New("path is not fully qualified")
)

// AbsolutePath is an immutable, validated, fully qualified path under a
// particular Style. The zero value means "no path": its Value is empty and
// it equals only other zero values.
//
// AbsolutePath is a plain value type with no mutation methods; copies are
// free to share across goroutines without synchronization.
type AbsolutePath struct {
	value    string
	original string
	style    Style
}

// New constructs an AbsolutePath from a string that must already be fully
// qualified under style. The value is stored unexamined: no normalization
// happens here (see Canonical). Returns an error wrapping ErrEmpty or
// ErrNotRooted on violation.
func New(s string, style Style) (AbsolutePath, error) {
	if s == "" {
		return AbsolutePath{}, fmt.Errorf("abspath: %w", ErrEmpty)
	}
	if !style.IsFullyQualified(s) {
		return AbsolutePath{}, fmt.Errorf("abspath: %q: %w", s, ErrNotRooted)
	}
	return AbsolutePath{value: s, original: s, style: style}, nil
}

// MustNew is New for paths known rooted at compile time; it panics on
// violation. Intended for fixed paths in wiring and test code.
func MustNew(s string, style Style) AbsolutePath {
	p, err := New(s, style)
	if err != nil {
		panic(err)
	}
	return p
}

// Join resolves p against base. A fully qualified p is taken as-is (base is
// ignored); anything else is combined with base textually, with no syscall
// and no validation of the characters in p, so combination never fails for
// a relative p and a non-zero base. Original on the result reports p as the
// caller passed it, not the combined string.
func Join(p string, base AbsolutePath) (AbsolutePath, error) {
	if p == "" {
		return AbsolutePath{}, fmt.Errorf("abspath: %w", ErrEmpty)
	}
	st := base.style
	if st.IsFullyQualified(p) {
		return AbsolutePath{value: p, original: p, style: st}, nil
	}
	if base.IsZero() {
		return AbsolutePath{}, fmt.Errorf("abspath: cannot resolve %q against an empty base: %w", p, ErrNotRooted)
	}
	v := base.value
	if !st.isSep(v[len(v)-1]) {
		v += string(st.Separator())
	}
	return AbsolutePath{value: v + p, original: p, style: st}, nil
}

// unchecked wraps a value already guaranteed rooted, preserving the
// supplied original. Used by Canonical, whose output is rooted by
// construction.
func unchecked(value, original string, style Style) AbsolutePath {
	return AbsolutePath{value: value, original: original, style: style}
}

// Value returns the validated, resolvable path string. Empty only for the
// zero value. This is the accessor legacy file APIs consume.
func (p AbsolutePath) Value() string {
	return p.value
}

// Original returns the string the caller supplied before any combination
// with a base path. Kept for diagnostics so messages can show what was
// actually passed in.
func (p AbsolutePath) Original() string {
	return p.original
}

// Style returns the path grammar this value was validated under.
func (p AbsolutePath) Style() Style {
	return p.style
}

// IsZero reports whether p is the zero "no path" value.
func (p AbsolutePath) IsZero() bool {
	return p.value == ""
}

// String returns Value. It exists so AbsolutePath drops into string
// formatting and legacy call sites cheaply.
func (p AbsolutePath) String() string {
	return p.value
}

// Key returns the comparison key for p under its style's case rule. Two
// paths are Equal exactly when their Keys match, so Key is the correct map
// key wherever hashing must agree with Equal.
func (p AbsolutePath) Key() string {
	return p.style.fold(p.value)
}

// Equal reports whether p and other name the same path: equal value
// strings under the style's case-sensitivity rule. Values of different
// styles are never equal; zero values equal only each other.
func (p AbsolutePath) Equal(other AbsolutePath) bool {
	if p.IsZero() || other.IsZero() {
		return p.IsZero() && other.IsZero()
	}
	return p.style == other.style && p.Key() == other.Key()
}
