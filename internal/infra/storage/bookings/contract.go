package bookings

import "github.com/m04kA/HRS-ReservationService/internal/domain"

// RoomResolver резолвит номер комнаты в запись уже загруженного реестра.
// Используется при загрузке журнала: бронирование должно ссылаться на
// тот же объект комнаты, что и реестр, а не на его копию.
type RoomResolver interface {
	ByNumber(number int) (*domain.Room, error)
}
