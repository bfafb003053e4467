package user

import (
	"os"
	"os/user"
	"strings"
)

// SuggestedUsername returns the login name to pre-fill in the username prompt.
// It tries, in order:
// 1. user.Current() - the OS account name
// 2. USER environment variable - fallback for restricted environments
// An empty string means there is nothing to suggest.
func SuggestedUsername() string {
	if currentUser, err := user.Current(); err == nil {
		return normalize(currentUser.Username)
	}
	return normalize(os.Getenv("USER"))
}

// normalize strips a Windows domain prefix and surrounding whitespace
func normalize(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	return name
}
