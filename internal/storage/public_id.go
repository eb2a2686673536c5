package storage

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const uploadMarker = "upload"

var (
	versionSegment = regexp.MustCompile(`^v\d+$`)
	trailingExt    = regexp.MustCompile(`\.[^/.]+$`)
)

// DerivePublicID returns the storage key for fileName: everything before the
// first dot, so "archive.tar.gz" becomes "archive". Delete relies on this
// naming, so changing it orphans assets already uploaded.
// A name with an empty stem gets a random key.
func DerivePublicID(fileName string) string {
	key, _, _ := strings.Cut(fileName, ".")
	if key == "" {
		return uuid.NewString()
	}
	return key
}

// ExtractPublicID recovers the public id from a delivery URL of the form
// .../upload/[v<version>/]<path>.<ext>. It reports false when the URL has no
// upload marker or nothing usable after it.
func ExtractPublicID(assetURL string) (string, bool) {
	parts := strings.Split(assetURL, "/")

	idx := -1
	for i, part := range parts {
		if part == uploadMarker {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "", false
	}

	path := parts[idx+1:]
	if len(path) > 0 && versionSegment.MatchString(path[0]) {
		path = path[1:]
	}
	if len(path) == 0 {
		return "", false
	}

	publicID := trailingExt.ReplaceAllString(strings.Join(path, "/"), "")
	if publicID == "" {
		return "", false
	}
	return publicID, true
}
