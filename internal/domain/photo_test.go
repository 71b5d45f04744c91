package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoSet_CapacityInvariant(t *testing.T) {
	set := NewPhotoSet(3)

	assert.NoError(t, set.Add(Photo{ID: "a", Name: "front"}))
	assert.NoError(t, set.Add(Photo{ID: "b", Name: "rear"}))
	assert.NoError(t, set.Add(Photo{ID: "c", Name: "left"}))
	assert.Equal(t, 3, set.Len())

	err := set.Add(Photo{ID: "d", Name: "right"})
	assert.ErrorIs(t, err, ErrPhotoSetFull)
	assert.Equal(t, 3, set.Len())

	assert.True(t, set.Remove("b"))
	assert.NoError(t, set.Add(Photo{ID: "d", Name: "right"}))
	assert.Equal(t, 3, set.Len())
}

func TestPhotoSet_RemoveUnknownID(t *testing.T) {
	set := NewPhotoSet(1)
	assert.NoError(t, set.Add(Photo{ID: "a"}))
	assert.False(t, set.Remove("missing"))
	assert.Equal(t, 1, set.Len())
}

func TestPhotoSet_OrderPreserved(t *testing.T) {
	set := NewPhotoSet(3)
	_ = set.Add(Photo{ID: "1"})
	_ = set.Add(Photo{ID: "2"})
	_ = set.Add(Photo{ID: "3"})
	_ = set.Remove("2")

	photos := set.Photos()
	assert.Len(t, photos, 2)
	assert.Equal(t, "1", photos[0].ID)
	assert.Equal(t, "3", photos[1].ID)
}
