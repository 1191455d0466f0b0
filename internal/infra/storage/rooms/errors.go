package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната с таким номером не зарегистрирована
	ErrRoomNotFound = errors.New("rooms.repository: room not found")

	// ErrNoAvailableRoom возвращается, когда нет свободной комнаты нужной категории
	ErrNoAvailableRoom = errors.New("rooms.repository: no available room in category")

	// ErrReadFile возвращается при ошибке чтения файла реестра
	ErrReadFile = errors.New("rooms.repository: failed to read rooms file")

	// ErrWriteFile возвращается при ошибке записи файла реестра
	ErrWriteFile = errors.New("rooms.repository: failed to write rooms file")

	// ErrParseRecord возвращается при некорректной записи в файле реестра
	ErrParseRecord = errors.New("rooms.repository: malformed room record")
)
