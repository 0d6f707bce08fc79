// Package abspath provides an immutable, validated representation of a
// fully qualified file system path.
//
// # Why AbsolutePath Exists
//
// Tasks executing concurrently inside one engine process cannot rely on the
// process-wide working directory: a relative path resolved through ordinary
// file APIs silently resolves against whichever directory the process
// happens to have, which under concurrency is some other task's business.
// AbsolutePath makes rootedness a property of the type. A value either is
// the zero value ("no path") or carries a string that satisfied the
// platform's fully-qualified predicate at construction time, so any code
// holding one knows no ambient-directory lookup can occur downstream.
//
// # Platform Styles
//
// Path grammar differs per platform (drive-rooted and UNC forms on Windows,
// a single leading separator on POSIX), and so does the case-sensitivity
// rule used for equality. Both grammars are modeled by Style so that either
// can be constructed and tested on any host; Native selects the grammar of
// the running platform.
//
// # Canonicalization
//
// Canonical lazily normalizes relative segments and redundant separators.
// It first runs a single-pass scanner over the string and returns the
// receiver untouched when nothing needs work, so the common case allocates
// nothing and callers comparing against the original value can skip
// re-processing.
package abspath
