package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// StoredFilename builds a collision-free filename for an uploaded file,
// keeping the original base name readable for download listings.
func StoredFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	base = sanitizeFilenameBase(base)
	if base == "" {
		base = "file"
	}
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s_%s%s", base, suffix, ext)
}

// UserUploadDir ensures the per-user upload directory exists and returns it.
func UserUploadDir(uploadRoot string, userID int) (string, error) {
	dir := filepath.Join(uploadRoot, "user_"+strconv.Itoa(userID))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	return dir, nil
}

func sanitizeFilenameBase(base string) string {
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}
