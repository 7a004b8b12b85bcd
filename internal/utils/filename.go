package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// unsafeChars matches every character that is not allowed to appear in a
// stored upload name.  Anything outside the allow-list collapses to an
// underscore.
var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename reduces a client-supplied filename to a safe basename
// for use as a storage path.  Directory components are stripped first so
// that names like "../../etc/passwd" cannot traverse out of the upload
// directory, then remaining characters are restricted to a conservative
// allow-list.  Returns "" when nothing usable is left, which callers must
// treat as an invalid upload.
func SanitizeFilename(name string) string {
	// Strip any path, for both separator conventions.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == "/" {
		return ""
	}
	name = unsafeChars.ReplaceAllString(name, "_")
	// A name of only dots or underscores hides no usable filename.
	if strings.Trim(name, "._") == "" {
		return ""
	}
	return name
}

// ExtAllowed reports whether the file's extension is in the configured
// allow-list.  The check is case-insensitive and a file without any
// extension is always rejected.
func ExtAllowed(name string, allowed map[string]bool) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}
	return allowed[ext]
}
