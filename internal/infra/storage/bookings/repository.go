package bookings

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/m04kA/HRS-ReservationService/internal/domain"
)

// Количество полей записи: с суммой и без нее.
// Старые снимки писались без суммы, тогда она восстанавливается
// из прайс-листа категории после привязки комнаты.
const (
	bookingRecordFields       = 4
	bookingRecordFieldsLegacy = 3
)

// Repository файловый журнал активных бронирований.
// Бронирования хранятся в памяти в порядке добавления; файл-снимок
// полностью перезаписывается при каждом сохранении.
type Repository struct {
	path     string
	bookings []*domain.Booking
}

// NewRepository создает новый экземпляр журнала бронирований
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load читает журнал из файла и привязывает каждую запись к комнате из
// реестра через resolver: бронирование получает общий указатель на
// запись реестра, а не копию. Записи, ссылающиеся на неизвестный номер
// комнаты, отбрасываются; их количество возвращается вызывающему для
// предупреждения в логе.
// Отсутствие файла - не ошибка: журнал остается пустым. При ошибке
// чтения или разбора журнал тоже остается пустым, чтобы вызывающий
// мог продолжить работу с чистого состояния.
func (r *Repository) Load(ctx context.Context, resolver RoomResolver) (int, error) {
	r.bookings = nil

	file, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Load - open %s: %v", ErrReadFile, r.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("%w: Load - parse %s: %v", ErrParseRecord, r.path, err)
	}

	dropped := 0
	loaded := make([]*domain.Booking, 0, len(records))
	for i, record := range records {
		booking, roomNumber, err := parseBookingRecord(record)
		if err != nil {
			return 0, fmt.Errorf("%w: Load - line %d: %v", ErrParseRecord, i+1, err)
		}

		room, err := resolver.ByNumber(roomNumber)
		if err != nil {
			// Осиротевшая запись: комнаты с таким номером больше нет в реестре
			dropped++
			continue
		}

		booking.Room = room
		if booking.AmountPaid < 0 {
			booking.AmountPaid = domain.PriceFor(room.Category)
		}
		loaded = append(loaded, booking)
	}

	r.bookings = loaded
	return dropped, nil
}

// Save полностью перезаписывает файл-снимок журнала.
// Как и в реестре комнат: временный файл плюс переименование, чтобы
// упавшая запись не оставила частично записанный снимок.
func (r *Repository) Save(ctx context.Context) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: Save - create storage dir: %v", ErrWriteFile, err)
	}

	tmp, err := os.CreateTemp(dir, "bookings-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: Save - create temp file: %v", ErrWriteFile, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := csv.NewWriter(tmp)
	for _, booking := range r.bookings {
		record := []string{
			strconv.Itoa(booking.ID),
			booking.CustomerName,
			strconv.Itoa(booking.Room.Number),
			strconv.FormatFloat(booking.AmountPaid, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			tmp.Close()
			return fmt.Errorf("%w: Save - write record: %v", ErrWriteFile, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: Save - flush records: %v", ErrWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: Save - close temp file: %v", ErrWriteFile, err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("%w: Save - replace snapshot: %v", ErrWriteFile, err)
	}
	return nil
}

// Append добавляет бронирование в конец журнала
func (r *Repository) Append(booking *domain.Booking) {
	r.bookings = append(r.bookings, booking)
}

// InsertAt вставляет бронирование на позицию index, сдвигая хвост.
// Индекс за пределами журнала означает вставку в конец. Используется
// при откате отмены: бронирование возвращается на свое прежнее место,
// порядок журнала не меняется.
func (r *Repository) InsertAt(index int, booking *domain.Booking) {
	if index < 0 || index > len(r.bookings) {
		index = len(r.bookings)
	}
	r.bookings = append(r.bookings, nil)
	copy(r.bookings[index+1:], r.bookings[index:])
	r.bookings[index] = booking
}

// RemoveByID удаляет бронирование по идентификатору.
// Возвращает удаленное бронирование и позицию, которую оно занимало.
func (r *Repository) RemoveByID(id int) (*domain.Booking, int, error) {
	for i, booking := range r.bookings {
		if booking.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return booking, i, nil
		}
	}
	return nil, 0, ErrBookingNotFound
}

// ListAll возвращает бронирования в порядке добавления
func (r *Repository) ListAll() []*domain.Booking {
	all := make([]*domain.Booking, len(r.bookings))
	copy(all, r.bookings)
	return all
}

// HighestID возвращает максимальный идентификатор журнала.
// Используется для восстановления счетчика после загрузки.
func (r *Repository) HighestID() (int, bool) {
	if len(r.bookings) == 0 {
		return 0, false
	}
	highest := r.bookings[0].ID
	for _, booking := range r.bookings[1:] {
		if booking.ID > highest {
			highest = booking.ID
		}
	}
	return highest, true
}

// parseBookingRecord разбирает запись вида "1000,Alice,102,3500".
// Возвращает бронирование без привязанной комнаты и номер комнаты для
// резолва. Для записей без поля суммы AmountPaid временно ставится -1.
func parseBookingRecord(record []string) (*domain.Booking, int, error) {
	if len(record) != bookingRecordFields && len(record) != bookingRecordFieldsLegacy {
		return nil, 0, fmt.Errorf("expected %d or %d fields, got %d",
			bookingRecordFieldsLegacy, bookingRecordFields, len(record))
	}

	id, err := strconv.Atoi(record[0])
	if err != nil {
		return nil, 0, fmt.Errorf("invalid booking id %q", record[0])
	}

	roomNumber, err := strconv.Atoi(record[2])
	if err != nil {
		return nil, 0, fmt.Errorf("invalid room number %q", record[2])
	}

	amount := -1.0
	if len(record) == bookingRecordFields {
		amount, err = strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid amount %q", record[3])
		}
	}

	return &domain.Booking{
		ID:           id,
		CustomerName: record[1],
		AmountPaid:   amount,
	}, roomNumber, nil
}
