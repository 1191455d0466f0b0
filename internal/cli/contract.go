package cli

import (
	"context"

	"github.com/m04kA/HRS-ReservationService/internal/service/reservations/models"
)

// ReservationService интерфейс сервиса бронирования
type ReservationService interface {
	ListAvailableRooms(ctx context.Context) *models.RoomListResponse
	BookRoom(ctx context.Context, req *models.BookRoomRequest) (*models.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID int) error
	ListBookings(ctx context.Context) *models.BookingListResponse
}

// ChatLauncher открывает окно чат-ассистента и блокируется до его закрытия
type ChatLauncher interface {
	Run() error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
