package handlers

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// avatarURL builds the Gravatar image URL for a commenter.
func avatarURL(email string) string {
	digest := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=100&d=retro&r=g", digest)
}
