package reservations

import "errors"

var (
	// ErrNoRoomAvailable возвращается, когда нет свободной комнаты запрошенной категории
	ErrNoRoomAvailable = errors.New("no room available in requested category")

	// ErrBookingNotFound возвращается, когда бронирование не найдено при отмене
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPersistence возвращается, когда изменение не удалось сохранить на диск.
	// Изменение в памяти при этом откатывается, память не расходится с диском.
	ErrPersistence = errors.New("failed to persist reservation state")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
