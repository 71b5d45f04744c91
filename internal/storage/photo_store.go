package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"carrental-pickup-flow/internal/domain"

	"github.com/google/uuid"
)

// PhotoStore keeps inspection and return photos on the local filesystem.
// Photos live only for the session; a fresh run starts from an empty
// directory tree.
type PhotoStore struct {
	photosDir   string
	previewsDir string
}

func NewPhotoStore(uploadDir string) (*PhotoStore, error) {
	photosDir := filepath.Join(uploadDir, "photos")
	previewsDir := filepath.Join(uploadDir, "previews")

	if err := os.MkdirAll(photosDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create photos directory: %w", err)
	}
	if err := os.MkdirAll(previewsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create previews directory: %w", err)
	}

	return &PhotoStore{
		photosDir:   photosDir,
		previewsDir: previewsDir,
	}, nil
}

// Capture saves one image blob under a generated key and returns the
// photo record with its preview handle.
func (s *PhotoStore) Capture(name string, blob io.Reader) (domain.Photo, error) {
	id := uuid.New().String()
	path := filepath.Join(s.photosDir, id+".jpg")

	file, err := os.Create(path)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("failed to create photo file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, blob); err != nil {
		file.Close()
		os.Remove(path)
		return domain.Photo{}, fmt.Errorf("failed to write photo: %w", err)
	}

	return domain.Photo{
		ID:      id,
		Name:    name,
		Path:    path,
		Preview: filepath.Join(s.previewsDir, id+".jpg"),
	}, nil
}

// Discard removes the stored file for a photo removed by the user or
// dropped when its widget goes away. Missing files are not an error.
func (s *PhotoStore) Discard(p domain.Photo) error {
	err := os.Remove(p.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}
