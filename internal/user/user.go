// Package user resolves who is writing a comment
package user

import (
	"os"
	"os/user"
	"strings"
)

// Unknown is recorded when no name can be determined
const Unknown = "unknown"

// AuthorEnv overrides the OS username as comment author
const AuthorEnv = "CIRCLEBACK_AUTHOR"

// CurrentUsername returns the OS username, then $USER, then Unknown
func CurrentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return Unknown
}

// Author picks the comment author: an explicit name wins, then
// $CIRCLEBACK_AUTHOR, then the OS username. Never empty.
func Author(explicit string) string {
	if name := strings.TrimSpace(explicit); name != "" {
		return name
	}
	if name := strings.TrimSpace(os.Getenv(AuthorEnv)); name != "" {
		return name
	}
	return CurrentUsername()
}
