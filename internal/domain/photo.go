package domain

import "errors"

var ErrPhotoSetFull = errors.New("photo set is at capacity")

// Photo is one captured image with a stored file and a preview handle.
type Photo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Path    string `json:"path"`
	Preview string `json:"preview"`
}

// PhotoSet is a bounded ordered collection of photos owned by a single
// capture widget. Capacity is fixed at construction; adds past capacity
// are rejected.
type PhotoSet struct {
	capacity int
	photos   []Photo
}

func NewPhotoSet(capacity int) *PhotoSet {
	if capacity < 1 {
		capacity = 1
	}
	return &PhotoSet{capacity: capacity}
}

func (s *PhotoSet) Add(p Photo) error {
	if len(s.photos) >= s.capacity {
		return ErrPhotoSetFull
	}
	s.photos = append(s.photos, p)
	return nil
}

// Remove deletes the photo with the given id and reports whether it was
// present.
func (s *PhotoSet) Remove(id string) bool {
	for i, p := range s.photos {
		if p.ID == id {
			s.photos = append(s.photos[:i], s.photos[i+1:]...)
			return true
		}
	}
	return false
}

func (s *PhotoSet) Len() int { return len(s.photos) }

func (s *PhotoSet) Capacity() int { return s.capacity }

// Photos returns the photos in insertion order.
func (s *PhotoSet) Photos() []Photo {
	out := make([]Photo, len(s.photos))
	copy(out, s.photos)
	return out
}
