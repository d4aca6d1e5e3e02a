package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a fresh random identifier, used to name stored uploads
// so client-supplied filenames never reach the filesystem.
func GenerateID() string {
	return uuid.New().String()
}
