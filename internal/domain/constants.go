package domain

// BaseBookingID is the identifier assigned to the first booking of a
// fresh store. Subsequent bookings increment from here; after a reload
// the counter resumes one past the highest identifier in the ledger.
const BaseBookingID = 1000

// CategoryPrices is the fixed category price table. The amount is
// recorded on the booking at booking time and never recomputed, even
// if the table changes later.
var CategoryPrices = map[RoomCategory]float64{
	CategoryStandard: 2000,
	CategoryDeluxe:   3500,
	CategorySuite:    5000,
}

// PriceFor returns the amount charged for booking a room of the given category
func PriceFor(c RoomCategory) float64 {
	return CategoryPrices[c]
}

// SeedRooms returns the fixed starter set of rooms. It is used exactly
// once, when no persisted room registry exists yet. Each call returns
// fresh instances so seeding never aliases a previous registry.
func SeedRooms() []*Room {
	return []*Room{
		{Number: 101, Category: CategoryStandard},
		{Number: 102, Category: CategoryDeluxe},
		{Number: 103, Category: CategorySuite},
		{Number: 104, Category: CategoryStandard},
	}
}
