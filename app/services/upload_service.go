package services

import (
	"strings"

	"github.com/moyashi0060/kittchen-POS-app/pkg/apperr"
	"github.com/moyashi0060/kittchen-POS-app/pkg/metrics"
	"github.com/moyashi0060/kittchen-POS-app/pkg/storage"
	"github.com/moyashi0060/kittchen-POS-app/pkg/token"
)

// allowedExtensions is the image extension allow-list, matched
// case-insensitively on the final dot segment of the filename.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// UploadService stores product images in the blob store and resolves
// their public URLs. The returned URL is not attached to any product;
// callers update the product's image_url separately.
type UploadService struct {
	disk   storage.Disk
	prefix string
}

func NewUploadService(disk storage.Disk, prefix string) *UploadService {
	return &UploadService{disk: disk, prefix: strings.Trim(prefix, "/")}
}

// Store validates and uploads one file, returning its public URL.
// The storage key prefixes a random token to the sanitized original
// filename so concurrent uploads of the same name cannot collide.
func (s *UploadService) Store(filename, contentType string, content []byte) (string, error) {
	if filename == "" {
		return "", apperr.Validationf("no file selected")
	}
	if !allowedExtension(filename) {
		return "", apperr.Validationf("file type not allowed")
	}

	key := token.New(32) + "_" + sanitizeFilename(filename)
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}

	if err := s.disk.Put(key, content, contentType); err != nil {
		return "", apperr.Store(err, "storage upload failed")
	}

	metrics.UploadBytes.Observe(float64(len(content)))
	return s.disk.URL(key), nil
}

func allowedExtension(filename string) bool {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[idx+1:])]
}

// sanitizeFilename reduces a caller-supplied filename to a safe
// storage key segment: path separators are stripped, whitespace
// becomes underscores, and anything outside [A-Za-z0-9._-] is dropped.
func sanitizeFilename(filename string) string {
	// Take the base name across both separator styles.
	if idx := strings.LastIndexAny(filename, `/\`); idx >= 0 {
		filename = filename[idx+1:]
	}

	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteByte('_')
		}
	}

	safe := strings.Trim(b.String(), "._")
	if safe == "" {
		safe = "file"
	}
	return safe
}
