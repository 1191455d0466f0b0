package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoomCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RoomCategory
	}{
		{name: "upper case", input: "DELUXE", want: CategoryDeluxe},
		{name: "lower case", input: "deluxe", want: CategoryDeluxe},
		{name: "mixed case", input: "Suite", want: CategorySuite},
		{name: "surrounding spaces", input: "  standard  ", want: CategoryStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRoomCategory(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoomCategory_Unknown(t *testing.T) {
	_, err := ParseRoomCategory("PENTHOUSE")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = ParseRoomCategory("")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestPriceFor(t *testing.T) {
	assert.Equal(t, float64(2000), PriceFor(CategoryStandard))
	assert.Equal(t, float64(3500), PriceFor(CategoryDeluxe))
	assert.Equal(t, float64(5000), PriceFor(CategorySuite))
}

func TestRoomString(t *testing.T) {
	room := &Room{Number: 101, Category: CategoryStandard}
	assert.Equal(t, "Room 101 (STANDARD) - Available", room.String())

	room.Booked = true
	assert.Equal(t, "Room 101 (STANDARD) - Booked", room.String())
}

func TestSeedRooms(t *testing.T) {
	seeded := SeedRooms()
	require.Len(t, seeded, 4)

	assert.Equal(t, 101, seeded[0].Number)
	assert.Equal(t, CategoryStandard, seeded[0].Category)
	assert.Equal(t, 102, seeded[1].Number)
	assert.Equal(t, CategoryDeluxe, seeded[1].Category)
	assert.Equal(t, 103, seeded[2].Number)
	assert.Equal(t, CategorySuite, seeded[2].Category)
	assert.Equal(t, 104, seeded[3].Number)
	assert.Equal(t, CategoryStandard, seeded[3].Category)

	for _, room := range seeded {
		assert.True(t, room.IsAvailable())
	}

	// Каждый вызов отдает свежие экземпляры
	again := SeedRooms()
	assert.NotSame(t, seeded[0], again[0])
}
