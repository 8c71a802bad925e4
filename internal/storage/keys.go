// internal/storage/keys.go
package storage

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PhotoObjectName builds the storage key for a photo. Keys are deterministic
// per (inspection, filename): re-uploading the same filename overwrites the
// previous object, which is the accepted last-write-wins policy.
func PhotoObjectName(inspectionID uint, filename string) string {
	return fmt.Sprintf("inspections/%d/%s", inspectionID, filepath.Base(filename))
}

// ContentTypeFor infers a content type from the filename extension.
func ContentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
