package storage

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const profilePrefix = "profiles"

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,5}$`)

// ProfilePictureKey derives a unique object key for a user's picture,
// keeping the original file extension when it looks sane.
func ProfilePictureKey(userID int64, filename string) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(filename, `\`, "/")))
	if !extPattern.MatchString(ext) {
		ext = ""
	}
	return fmt.Sprintf("%s/user-%d-%s%s", profilePrefix, userID, uuid.NewString(), ext)
}
