// Package filex contains small file helpers for the client: reading a local
// image picked by the user and sniffing its content type for upload.
package filex

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ReadImage loads the image at path into memory and returns its bytes
// together with the detected content type. Detection uses the file
// contents, falling back to the extension for formats http.DetectContentType
// does not recognize.
func ReadImage(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("read image %s: empty file", path)
	}

	contentType := http.DetectContentType(data)
	if contentType == "application/octet-stream" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".jpg", ".jpeg":
			contentType = "image/jpeg"
		case ".png":
			contentType = "image/png"
		case ".webp":
			contentType = "image/webp"
		}
	}
	return data, contentType, nil
}

// EnsureSubDir creates dirName under the current working directory if needed
// and returns its absolute path. Used for the local data directory.
func EnsureSubDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
