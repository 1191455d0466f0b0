package reservations

import (
	"context"

	"github.com/m04kA/HRS-ReservationService/internal/domain"
	"github.com/m04kA/HRS-ReservationService/internal/infra/storage/bookings"
)

// RoomRegistry интерфейс реестра комнат
type RoomRegistry interface {
	Load(ctx context.Context) error
	SeedDefaults()
	Save(ctx context.Context) error
	FindAvailableByCategory(category domain.RoomCategory) (*domain.Room, error)
	ListAvailable() []*domain.Room
	ListAll() []*domain.Room
	ByNumber(number int) (*domain.Room, error)
}

// BookingLedger интерфейс журнала бронирований
type BookingLedger interface {
	Load(ctx context.Context, resolver bookings.RoomResolver) (int, error)
	Save(ctx context.Context) error
	Append(booking *domain.Booking)
	InsertAt(index int, booking *domain.Booking)
	RemoveByID(id int) (*domain.Booking, int, error)
	ListAll() []*domain.Booking
	HighestID() (int, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
