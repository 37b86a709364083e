package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyashi0060/kittchen-POS-app/pkg/apperr"
)

// fakeDisk captures the last Put so the storage key can be inspected.
type fakeDisk struct {
	failWith error

	lastKey         string
	lastContent     []byte
	lastContentType string
}

func (f *fakeDisk) Put(path string, content []byte, contentType string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.lastKey = path
	f.lastContent = content
	f.lastContentType = contentType
	return nil
}

func (f *fakeDisk) Get(path string) ([]byte, error) { return nil, errors.New("not implemented") }
func (f *fakeDisk) Exists(path string) bool         { return path == f.lastKey }
func (f *fakeDisk) Delete(path string) error        { return nil }
func (f *fakeDisk) URL(path string) string          { return "https://cdn.example.com/" + path }

func TestUploadStoresFileAndReturnsURL(t *testing.T) {
	disk := &fakeDisk{}
	svc := NewUploadService(disk, "product_images")

	url, err := svc.Store("menu photo.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(disk.lastKey, "product_images/"))
	assert.True(t, strings.HasSuffix(disk.lastKey, "_menu_photo.png"), "key keeps the sanitized original name: %s", disk.lastKey)
	assert.NotEqual(t, "product_images/menu_photo.png", disk.lastKey, "a random token prevents collisions")
	assert.Equal(t, []byte("png-bytes"), disk.lastContent)
	assert.Equal(t, "image/png", disk.lastContentType)
	assert.Equal(t, "https://cdn.example.com/"+disk.lastKey, url)
}

func TestUploadKeysAreUnique(t *testing.T) {
	disk := &fakeDisk{}
	svc := NewUploadService(disk, "")

	_, err := svc.Store("a.png", "image/png", nil)
	require.NoError(t, err)
	first := disk.lastKey

	_, err = svc.Store("a.png", "image/png", nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, disk.lastKey)
}

func TestUploadRejectsEmptyFilename(t *testing.T) {
	svc := NewUploadService(&fakeDisk{}, "product_images")

	_, err := svc.Store("", "application/octet-stream", nil)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "no file selected")
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	svc := NewUploadService(&fakeDisk{}, "product_images")

	for _, name := range []string{"setup.exe", "notes.txt", "archive.png.zip", "noext", "trailingdot."} {
		_, err := svc.Store(name, "application/octet-stream", nil)
		require.Error(t, err, "filename %q", name)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		assert.Contains(t, err.Error(), "file type not allowed")
	}
}

func TestUploadExtensionIsCaseInsensitive(t *testing.T) {
	disk := &fakeDisk{}
	svc := NewUploadService(disk, "")

	_, err := svc.Store("PHOTO.JPG", "image/jpeg", nil)
	require.NoError(t, err)
}

func TestUploadDiskFailure(t *testing.T) {
	disk := &fakeDisk{failWith: errors.New("bucket not reachable")}
	svc := NewUploadService(disk, "product_images")

	_, err := svc.Store("photo.png", "image/png", nil)
	require.Error(t, err)
	assert.Equal(t, apperr.StoreUnavailable, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "storage upload failed")
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo.png"},
		{"menu photo.png", "menu_photo.png"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\staff\photo.png`, "photo.png"},
		{"写真.png", "png"},
		{"...", "file"},
		{"", "file"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeFilename(tc.in), "input %q", tc.in)
	}
}
