// utils/file.go - Upload filename helpers
package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// GenerateUniqueFilename keeps the original extension and a sanitized
// stem, prefixed with a UUID so concurrent uploads never collide.
func GenerateUniqueFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	stem := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	stem = unsafeFilenameChars.ReplaceAllString(stem, "_")
	if len(stem) > 40 {
		stem = stem[:40]
	}
	if stem == "" {
		stem = "file"
	}
	return fmt.Sprintf("%s_%s%s", uuid.New().String(), stem, ext)
}

// AllowedUploadExt whitelists the document formats participants may
// upload.
func AllowedUploadExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
