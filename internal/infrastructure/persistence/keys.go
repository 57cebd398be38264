package persistence

import "strings"

const blobPrefix = "cache/"

// BlobPath derives the fallback-store path for a cache key. Characters outside
// [a-z0-9._-] become underscores so the path is safe on any filesystem.
func BlobPath(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	var b strings.Builder
	b.Grow(len(blobPrefix) + len(key) + len(".json"))
	b.WriteString(blobPrefix)
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	b.WriteString(".json")
	return b.String()
}
