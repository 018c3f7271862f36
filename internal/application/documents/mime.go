package documents

import (
	"net/http"
	"path/filepath"
	"strings"
)

// DetectMimeType prefers the file extension and falls back to content sniffing.
func DetectMimeType(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".gif":
		return "image/gif"
	case ".txt":
		return "text/plain"
	}
	return http.DetectContentType(data)
}
