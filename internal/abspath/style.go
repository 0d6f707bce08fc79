package abspath

import (
	"runtime"
	"strings"
)

// Style identifies a platform path grammar. It controls which strings count
// as fully qualified, which bytes act as separators, and whether equality
// folds case.
type Style int

const (
	// Posix paths are rooted by a single leading '/' and compare
	// case-sensitively.
	Posix Style = iota
	// Windows paths are rooted by a drive ("C:\") or a UNC prefix
	// ("\\server\share"), accept '/' as an alternate separator, and
	// compare case-insensitively.
	Windows
)

// Native returns the Style of the running platform.
func Native() Style {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// String returns a human-readable name for the style.
func (st Style) String() string {
	switch st {
	case Posix:
		return "posix"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// Separator returns the style's primary directory separator.
func (st Style) Separator() byte {
	if st == Windows {
		return '\\'
	}
	return '/'
}

// isSep reports whether c acts as a directory separator under the style.
// Windows accepts both '\' and '/'.
func (st Style) isSep(c byte) bool {
	if c == '/' {
		return true
	}
	return st == Windows && c == '\\'
}

// hasAltSep reports whether the style recognizes a second separator byte
// besides the primary one.
func (st Style) hasAltSep() bool {
	return st == Windows
}

// caseInsensitive reports whether path equality folds case under the style.
func (st Style) caseInsensitive() bool {
	return st == Windows
}

// IsFullyQualified reports whether s identifies a location without
// reference to any current directory. Drive-relative ("C:foo") and
// root-relative ("\foo") Windows forms are rooted but not fully qualified
// and are rejected.
func (st Style) IsFullyQualified(s string) bool {
	if s == "" {
		return false
	}
	if st == Windows {
		if len(s) >= 3 && isDriveLetter(s[0]) && s[1] == ':' && st.isSep(s[2]) {
			return true
		}
		return len(s) >= 2 && st.isSep(s[0]) && st.isSep(s[1])
	}
	return s[0] == '/'
}

// volumeNameLen returns the length of the leading volume name in s: zero
// for POSIX, 2 for a drive ("C:"), and the "\\server\share" span for UNC.
// The volume name is the part of the path that relative segments can never
// climb above.
func (st Style) volumeNameLen(s string) int {
	if st != Windows {
		return 0
	}
	if len(s) >= 2 && isDriveLetter(s[0]) && s[1] == ':' {
		return 2
	}
	if len(s) >= 2 && st.isSep(s[0]) && st.isSep(s[1]) {
		// UNC: skip host, then share.
		i := 2
		for ; i < len(s) && !st.isSep(s[i]); i++ {
		}
		if i == len(s) {
			return i
		}
		j := i + 1
		for ; j < len(s) && !st.isSep(s[j]); j++ {
		}
		return j
	}
	return 0
}

// fold returns the comparison form of s under the style's case rule.
func (st Style) fold(s string) string {
	if st.caseInsensitive() {
		return strings.ToUpper(s)
	}
	return s
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
