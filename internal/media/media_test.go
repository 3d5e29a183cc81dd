package media

import (
	"bytes"
	"errors"
	"testing"
)

func TestPutAndGet(t *testing.T) {
	s := NewStore()

	data := []byte("fake jpeg bytes")
	blob, err := s.Put(data, "image/jpeg")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if blob.ID == "" {
		t.Fatal("expected a blob id")
	}
	if blob.URL != "/media/"+blob.ID {
		t.Fatalf("unexpected URL %q", blob.URL)
	}
	if blob.Size != int64(len(data)) {
		t.Fatalf("expected size %d, got %d", len(data), blob.Size)
	}

	ref, got, err := s.Get(blob.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ref.ContentType != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %q", ref.ContentType)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("stored bytes do not round-trip")
	}
}

func TestPutDefaultsContentType(t *testing.T) {
	s := NewStore()
	blob, err := s.Put([]byte{1}, "")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if blob.ContentType != "application/octet-stream" {
		t.Fatalf("expected octet-stream fallback, got %q", blob.ContentType)
	}
}

func TestPutRejectsEmptyPayload(t *testing.T) {
	s := NewStore()
	if _, err := s.Put(nil, "image/png"); err == nil {
		t.Fatal("expected an error for empty payload")
	}
}

func TestGetUnknown(t *testing.T) {
	s := NewStore()
	if _, _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
