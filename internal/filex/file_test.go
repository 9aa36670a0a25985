package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// minimal valid JPEG header, enough for content sniffing
var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

func TestReadImage_DetectsJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.jpg")
	require.NoError(t, os.WriteFile(path, jpegHeader, 0o600))

	data, contentType, err := ReadImage(path)
	require.NoError(t, err)
	require.Equal(t, jpegHeader, data)
	require.Equal(t, "image/jpeg", contentType)
}

func TestReadImage_FallsBackToExtension(t *testing.T) {
	// contents that sniff as octet-stream
	path := filepath.Join(t.TempDir(), "pic.webp")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01, 0x02, 0x03}, 0o600))

	_, contentType, err := ReadImage(path)
	require.NoError(t, err)
	require.Equal(t, "image/webp", contentType)
}

func TestReadImage_MissingFile(t *testing.T) {
	_, _, err := ReadImage(filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)
}

func TestReadImage_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jpg")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, _, err := ReadImage(path)
	require.Error(t, err)
}
