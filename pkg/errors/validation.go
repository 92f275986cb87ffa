package errors

import (
	"strings"
	"unicode"
)

// ValidateYarnID validates a yarn identifier from user input (manifests,
// CLI flags). Yarn ids end up in serialized graphs and DOT output, so the
// rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - Maximum length of 128 characters
func ValidateYarnID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "yarn id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "yarn id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "yarn id contains control characters")
		}
	}

	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be a hidden file")
	}

	return nil
}
