// Package storage provides the blob store client used for product
// image uploads.
//
// Two drivers are available:
//   - "local" — local filesystem, served under STORAGE_URL (default)
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// The Disk interface is deliberately small: the application only ever
// uploads a blob and resolves its durable public URL. The selected
// disk is built once at startup and injected into the upload service,
// so tests can substitute an in-memory implementation.
package storage

import (
	"fmt"

	"github.com/moyashi0060/kittchen-POS-app/config"
)

// Disk is the blob store driver interface.
type Disk interface {
	// Put writes content to path with the given content type.
	Put(path string, content []byte, contentType string) error

	// Get returns the full content of the blob at path.
	Get(path string) ([]byte, error)

	// Exists reports whether a blob exists at path.
	Exists(path string) bool

	// Delete removes a blob. Removing an absent blob is not an error.
	Delete(path string) error

	// URL returns the durable public URL for path.
	URL(path string) string
}

// New builds the disk selected by STORAGE_DISK. Selecting "s3" without
// a bucket and key pair configured is a startup error, not a
// per-request one.
func New() (Disk, error) {
	switch disk := config.StorageDisk(); disk {
	case "local":
		return newLocalDisk(), nil
	case "s3":
		return newS3Disk()
	default:
		return nil, fmt.Errorf("storage: unknown STORAGE_DISK %q (supported: local, s3)", disk)
	}
}
