package domain

// Booking represents an active reservation of exactly one room.
// Room is a shared reference into the room registry, never a copy:
// flipping the availability flag through the registry is visible
// through every booking that points at the room.
type Booking struct {
	ID           int
	CustomerName string
	Room         *Room
	AmountPaid   float64
}
