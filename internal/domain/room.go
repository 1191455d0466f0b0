package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCategory возвращается при попытке разобрать неизвестную категорию
	ErrUnknownCategory = errors.New("domain: unknown room category")
)

// RoomCategory represents the class of a hotel room
type RoomCategory string

const (
	CategoryStandard RoomCategory = "STANDARD"
	CategoryDeluxe   RoomCategory = "DELUXE"
	CategorySuite    RoomCategory = "SUITE"
)

// Categories lists every valid room category in declaration order
var Categories = []RoomCategory{
	CategoryStandard,
	CategoryDeluxe,
	CategorySuite,
}

// ParseRoomCategory converts free text into a RoomCategory.
// Matching is case-insensitive; surrounding whitespace is ignored.
func ParseRoomCategory(s string) (RoomCategory, error) {
	category := RoomCategory(strings.ToUpper(strings.TrimSpace(s)))
	if !category.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return category, nil
}

// IsValid returns true if the category is one of the enumerated classes
func (c RoomCategory) IsValid() bool {
	for _, valid := range Categories {
		if c == valid {
			return true
		}
	}
	return false
}

// Room represents a single hotel room in the registry.
// Number and Category are fixed at construction; only the reservation
// service flips Booked during booking and cancellation.
type Room struct {
	Number   int
	Category RoomCategory
	Booked   bool
}

// IsAvailable returns true if the room can be booked
func (r *Room) IsAvailable() bool {
	return !r.Booked
}

// String renders the room the way the reservation console displays it
func (r *Room) String() string {
	state := "Available"
	if r.Booked {
		state = "Booked"
	}
	return fmt.Sprintf("Room %d (%s) - %s", r.Number, r.Category, state)
}
