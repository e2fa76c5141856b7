package blob

import (
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// NewName builds a unique object name from the uploaded file name:
// <uuid>-<sanitized base name>.mp4
func NewName(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, `\`, "/"))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._-")
	if base == "" || base == "." {
		base = "video"
	}
	if len(base) > 100 {
		base = base[:100]
	}
	return uuid.NewString() + "-" + base + ".mp4"
}

// NameFromURL recovers the object name from a stored VideoURL: the last path
// segment with any query string (SAS token) dropped.
func NameFromURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return "", false
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." || name == "" {
		return "", false
	}
	return name, true
}
