package volume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolumePublicVenue(t *testing.T) {
	table := NewTable()

	assert.Equal(t, 50.0, table.Volume("beer", "club", 1))
	assert.Equal(t, 6.0, table.Volume("spirits", "bar", 2))
	assert.Equal(t, 12.0, table.Volume("wine", "festival", 1))
}

func TestVolumePrivateVenue(t *testing.T) {
	table := NewTable()

	assert.Equal(t, 33.0, table.Volume("beer", "house", 1))
	assert.Equal(t, 66.0, table.Volume("beer", "birthday", 2))
	assert.Equal(t, 15.0, table.Volume("wine", "friends_night", 1))
}

func TestVolumeUnknownTypeFallsBack(t *testing.T) {
	table := NewTable()

	assert.Equal(t, 25.0, table.Volume("kombucha", "club", 1))
	assert.Equal(t, 50.0, table.Volume("kombucha", "house", 2))
}

func TestVolumeNonPositiveQuantity(t *testing.T) {
	table := NewTable()

	assert.Equal(t, 0.0, table.Volume("beer", "club", 0))
	assert.Equal(t, 0.0, table.Volume("beer", "club", -2))
}

func TestVolumeShotSameEverywhere(t *testing.T) {
	table := NewTable()

	assert.Equal(t, table.Volume("shot", "club", 3), table.Volume("shot", "house", 3))
}
