package util

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarURL derives the avatar URL for an email address: md5 of the
// lower-cased address under the gravatar host, protocol-relative so it works
// on both http and https pages. An absent address yields an empty string and
// the caller omits the field.
func GravatarURL(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ""
	}
	sum := md5.Sum([]byte(email))
	return "//www.gravatar.com/avatar/" + hex.EncodeToString(sum[:])
}
