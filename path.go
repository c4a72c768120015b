package memfs

import (
	"strings"

	"memfs/internal/logging"
)

var (
	pathLogger = logging.GetLogger().WithPrefix("path")
)

// Normalize canonicalizes a path string into a store key. Backslash
// separators become forward slashes and trailing separators are stripped,
// so "/src/", "/src" and "\src" all refer to the same entry.
//
// Nothing else is canonicalized: no case folding, no resolution of "." or
// ".." segments, no collapsing of duplicate interior slashes. Normalize is
// the sole key derivation step before any map access.
func Normalize(path string) string {
	key := strings.ReplaceAll(path, `\`, "/")
	key = strings.TrimRight(key, "/")
	if key != path {
		pathLogger.Trace("Normalized path: %q -> %q", path, key)
	}
	return key
}

// ancestors returns every ancestor key of a normalized path, root-most
// first. The root itself ("") is never an ancestor.
func ancestors(key string) []string {
	var result []string
	for i := 1; i < len(key); i++ {
		if key[i] == '/' && key[i-1] != '/' {
			result = append(result, key[:i])
		}
	}
	return result
}
