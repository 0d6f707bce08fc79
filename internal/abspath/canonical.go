package abspath

// Canonical returns an equivalent path with true relative segments resolved
// and redundant or alternate separators normalized. When the value is
// already canonical the receiver itself is returned, unchanged, so the
// common case allocates nothing and callers may compare results against the
// input to skip re-work. Canonicalization never fails: rootedness was
// established at construction, and resolution is purely lexical.
//
// Canonical(Canonical(p)) always yields Canonical(p) unchanged.
func (p AbsolutePath) Canonical() AbsolutePath {
	if p.value == "" {
		return p
	}
	if !needsNormalization(p.value, p.style) {
		return p
	}
	return unchecked(canonicalize(p.value, p.style), p.original, p.style)
}

// needsNormalization scans s once, byte by byte, and reports whether the
// platform's full-path resolution would change it. It must not
// false-trigger on dot-prefixed names that are not exactly "." or ".."
// (".git", ".config", "...") — those are legitimate file names. Triggers:
//
//   - a doubled separator, except the leading pair of a Windows UNC prefix
//   - a separator followed by "." or ".." that ends at a separator or at
//     the end of the string
//   - on Windows, any occurrence of the alternate separator '/'
func needsNormalization(s string, style Style) bool {
	prevSep := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if style.hasAltSep() && c == '/' {
			return true
		}
		if !style.isSep(c) {
			prevSep = false
			continue
		}
		if prevSep && !(style == Windows && i == 1) {
			return true
		}
		if isDotSegment(s, i+1, style) {
			return true
		}
		prevSep = true
	}
	return false
}

// isDotSegment reports whether the segment starting at s[j] is exactly "."
// or "..", i.e. runs to a separator or to the end of the string.
func isDotSegment(s string, j int, style Style) bool {
	if j >= len(s) || s[j] != '.' {
		return false
	}
	if j+1 == len(s) || style.isSep(s[j+1]) {
		return true // lone "."
	}
	if s[j+1] != '.' {
		return false
	}
	return j+2 == len(s) || style.isSep(s[j+2]) // lone ".."
}

// canonicalize lexically resolves s, which must be fully qualified under
// style. The algorithm mirrors path/filepath.Clean restricted to rooted
// input, generalized over the style's separator set and volume grammar, so
// for the native style the output matches filepath.Clean byte for byte.
// Relative segments never climb above the volume root (the drive or UNC
// share on Windows, "/" on POSIX).
func canonicalize(s string, style Style) string {
	volLen := style.volumeNameLen(s)
	vol, rest := s[:volLen], s[volLen:]
	sep := style.Separator()

	out := make([]byte, 0, len(s))
	out = append(out, vol...)
	if rest == "" {
		return finishSeparators(out, style)
	}

	n := len(rest)
	r := 0
	if style.isSep(rest[0]) {
		out = append(out, sep)
		r = 1
	}
	root := len(out) // ".." cannot pop past this point

	for r < n {
		switch {
		case style.isSep(rest[r]):
			r++
		case rest[r] == '.' && (r+1 == n || style.isSep(rest[r+1])):
			// "." segment: drop.
			r++
		case rest[r] == '.' && rest[r+1] == '.' && (r+2 == n || style.isSep(rest[r+2])):
			// ".." segment: pop the previous component, if any.
			r += 2
			if len(out) > root {
				w := len(out) - 1
				for w > root && !style.isSep(out[w]) {
					w--
				}
				out = out[:w]
			}
		default:
			if len(out) != root {
				out = append(out, sep)
			}
			for ; r < n && !style.isSep(rest[r]); r++ {
				out = append(out, rest[r])
			}
		}
	}

	return finishSeparators(out, style)
}

// finishSeparators rewrites alternate separators to the primary one; the
// volume prefix may still carry them since it is copied verbatim.
func finishSeparators(out []byte, style Style) string {
	if style.hasAltSep() {
		for i, c := range out {
			if c == '/' {
				out[i] = style.Separator()
			}
		}
	}
	return string(out)
}
