package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	url, err := store.Save(context.Background(), "documents/1/ktp.pdf", strings.NewReader("content"), 7, "application/pdf")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/uploads/documents/1/ktp.pdf" {
		t.Errorf("unexpected url %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "documents", "1", "ktp.pdf"))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("stored content %q", data)
	}

	if err := store.Delete(context.Background(), "documents/1/ktp.pdf"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// Deleting a missing key is not an error.
	if err := store.Delete(context.Background(), "documents/1/ktp.pdf"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	for _, key := range []string{"../escape", "/absolute/path", "a/../../b", "."} {
		if _, err := store.Save(context.Background(), key, strings.NewReader("x"), 1, ""); err == nil {
			t.Errorf("key %q should be rejected", key)
		}
	}
}
