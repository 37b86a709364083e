package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestLocalDisk(t *testing.T) *localDisk {
	t.Helper()
	return &localDisk{root: t.TempDir(), baseURL: "http://localhost:8080/storage"}
}

func TestLocalDiskPutGet(t *testing.T) {
	disk := newTestLocalDisk(t)

	if err := disk.Put("product_images/abc_photo.png", []byte("png-bytes"), "image/png"); err != nil {
		t.Fatalf("put: %v", err)
	}

	data, err := disk.Get("product_images/abc_photo.png")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("content = %q", data)
	}

	if _, err := os.Stat(filepath.Join(disk.root, "product_images", "abc_photo.png")); err != nil {
		t.Fatalf("blob not on disk: %v", err)
	}
}

func TestLocalDiskExists(t *testing.T) {
	disk := newTestLocalDisk(t)

	if disk.Exists("missing.png") {
		t.Fatal("absent blob reported as existing")
	}
	if err := disk.Put("a.png", nil, "image/png"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if !disk.Exists("a.png") {
		t.Fatal("stored blob reported as missing")
	}
}

func TestLocalDiskDeleteAbsent(t *testing.T) {
	disk := newTestLocalDisk(t)
	if err := disk.Delete("never-stored.png"); err != nil {
		t.Fatalf("deleting an absent blob must succeed: %v", err)
	}
}

func TestLocalDiskURL(t *testing.T) {
	disk := newTestLocalDisk(t)
	want := "http://localhost:8080/storage/product_images/a.png"
	if got := disk.URL("/product_images/a.png"); got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
}
