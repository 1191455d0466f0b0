package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в журнале
	ErrBookingNotFound = errors.New("bookings.repository: booking not found")

	// ErrReadFile возвращается при ошибке чтения файла журнала
	ErrReadFile = errors.New("bookings.repository: failed to read bookings file")

	// ErrWriteFile возвращается при ошибке записи файла журнала
	ErrWriteFile = errors.New("bookings.repository: failed to write bookings file")

	// ErrParseRecord возвращается при некорректной записи в файле журнала
	ErrParseRecord = errors.New("bookings.repository: malformed booking record")
)
