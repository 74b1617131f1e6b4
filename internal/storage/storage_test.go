package storage

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestNewKeyShape(t *testing.T) {
	key := NewKey("equipa seniores.JPG")

	pattern := regexp.MustCompile(`^\d{13}-[0-9a-f]{8}\.jpg$`)
	if !pattern.MatchString(key) {
		t.Fatalf("key %q does not match timestamp-suffix.ext", key)
	}

	if NewKey("a.png") == NewKey("a.png") {
		t.Fatal("keys must be unique per call")
	}

	if !strings.HasSuffix(NewKey("noext"), "") || strings.Contains(NewKey("noext"), ".") {
		t.Fatal("missing extension must not invent one")
	}
}

func TestLocalStorageUpload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "http://localhost:8080/")
	if err != nil {
		t.Fatalf("new local: %v", err)
	}

	url, err := store.Upload(context.Background(), "123-abcd.png", "image/png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "http://localhost:8080/uploads/123-abcd.png" {
		t.Fatalf("url = %q", url)
	}

	contents, err := os.ReadFile(filepath.Join(dir, "123-abcd.png"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(contents) != "png-bytes" {
		t.Fatalf("contents = %q", contents)
	}
}

func TestLocalStorageStripsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "http://localhost:8080")
	if err != nil {
		t.Fatalf("new local: %v", err)
	}

	if _, err := store.Upload(context.Background(), "../escape.png", "image/png", strings.NewReader("x")); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.png")); err != nil {
		t.Fatalf("file not confined to dir: %v", err)
	}
}
