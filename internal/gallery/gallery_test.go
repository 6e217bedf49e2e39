// internal/gallery/gallery_test.go
//
// Unit-tests for the gallery ring: circular navigation must wrap at both
// ends, and frames must carry the right neighbor indices.
//
// Run: go test ./internal/gallery -v

package gallery

import (
	"os"
	"path/filepath"
	"testing"
)

const testManifest = `
images:
  - src: "/static/img/a.jpg"
    alt: "a"
    caption: "first"
  - src: "/static/img/b.jpg"
    alt: "b"
    caption: "second"
  - src: "/static/img/c.jpg"
    alt: "c"
    caption: "third"
`

func loadTestRing(t *testing.T) *Ring {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return r
}

func TestRing_WrapsBothEnds(t *testing.T) {
	r := loadTestRing(t)

	if got := r.Next(2); got != 0 {
		t.Errorf("Next(last) = %d, want 0", got)
	}
	if got := r.Prev(0); got != 2 {
		t.Errorf("Prev(first) = %d, want 2", got)
	}
	if got := r.Next(0); got != 1 {
		t.Errorf("Next(0) = %d, want 1", got)
	}
	if got := r.Prev(2); got != 1 {
		t.Errorf("Prev(2) = %d, want 1", got)
	}
}

func TestRing_FrameAt(t *testing.T) {
	r := loadTestRing(t)

	frame, ok := r.FrameAt(0)
	if !ok {
		t.Fatal("expected frame")
	}
	if frame.Prev != 2 || frame.Next != 1 || frame.Total != 3 {
		t.Fatalf("frame = %+v", frame)
	}
	if frame.Image.Caption != "first" {
		t.Fatalf("image = %+v", frame.Image)
	}

	if _, ok := r.FrameAt(3); ok {
		t.Fatal("out-of-range index must not resolve")
	}
	if _, ok := r.FrameAt(-1); ok {
		t.Fatal("negative index must not resolve")
	}
}

func TestLoad_EmptyManifestRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	if err := os.WriteFile(path, []byte("images: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty manifest")
	}
}
