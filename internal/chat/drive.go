package chat

import (
	"fmt"
	"regexp"
)

var driveFileRe = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)

// DrivePreviewURL rewrites a Google Drive share link into its embeddable
// preview form. Returns false when the URL carries no Drive file ID.
func DrivePreviewURL(raw string) (string, bool) {
	m := driveFileRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("https://drive.google.com/file/d/%s/preview", m[1]), true
}
