// internal/gallery/gallery.go
//
// Roasted Fig – Gallery image ring.
//
// Context
//   The gallery page shows a fixed, ordered set of images declared in
//   `conf/gallery.yaml`.  The lightbox steps through them with previous/next
//   controls that wrap at both ends, so the navigation is modeled as a ring:
//   Next and Prev always land on a valid index regardless of direction.
//
//------------------------------------------------------------------------------

package gallery

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Image is one gallery entry in display order.
type Image struct {
	Src     string `yaml:"src"     json:"src"`
	Alt     string `yaml:"alt"     json:"alt"`
	Caption string `yaml:"caption" json:"caption"`
}

// Ring is the ordered image sequence with circular navigation.
type Ring struct {
	images []Image
}

// Load parses the gallery manifest at path.
func Load(path string) (*Ring, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gallery manifest %s: %w", path, err)
	}

	var manifest struct {
		Images []Image `yaml:"images"`
	}
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("parse gallery manifest %s: %w", path, err)
	}
	if len(manifest.Images) == 0 {
		return nil, fmt.Errorf("gallery manifest %s: no images", path)
	}

	return &Ring{images: manifest.Images}, nil
}

// Len reports the number of images.
func (r *Ring) Len() int { return len(r.images) }

// Images returns the ordered sequence.
func (r *Ring) Images() []Image {
	out := make([]Image, len(r.images))
	copy(out, r.images)
	return out
}

// At returns the image at index i.  ok is false when i is out of range.
func (r *Ring) At(i int) (Image, bool) {
	if i < 0 || i >= len(r.images) {
		return Image{}, false
	}
	return r.images[i], true
}

// Next returns the index after i, wrapping past the last image to the first.
func (r *Ring) Next(i int) int { return (i + 1) % len(r.images) }

// Prev returns the index before i, wrapping past the first image to the last.
func (r *Ring) Prev(i int) int { return (i - 1 + len(r.images)) % len(r.images) }

// Frame bundles an image with its wrapped neighbor indices for the lightbox.
type Frame struct {
	Index int   `json:"index"`
	Image Image `json:"image"`
	Prev  int   `json:"prev"`
	Next  int   `json:"next"`
	Total int   `json:"total"`
}

// FrameAt returns the lightbox frame for index i.
func (r *Ring) FrameAt(i int) (Frame, bool) {
	img, ok := r.At(i)
	if !ok {
		return Frame{}, false
	}
	return Frame{
		Index: i,
		Image: img,
		Prev:  r.Prev(i),
		Next:  r.Next(i),
		Total: r.Len(),
	}, true
}
