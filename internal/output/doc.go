// Package output renders an analysis result for the terminal or a file.
//
// Three formats are supported: "text" (human-readable), "json" (the full
// result as indented JSON), and "markdown". Text and markdown render the
// localized fields in the caller's requested language, falling back to
// English where a translation is missing.
package output
