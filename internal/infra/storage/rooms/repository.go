package rooms

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/m04kA/HRS-ReservationService/internal/domain"
)

// Метки флага занятости в файле реестра
const (
	flagBooked    = "Booked"
	flagAvailable = "Available"
)

// roomRecordFields количество полей записи: номер, категория, флаг
const roomRecordFields = 3

// Repository файловый реестр комнат отеля.
// Комнаты хранятся в памяти в порядке регистрации плюс индекс по номеру;
// файл-снимок полностью перезаписывается при каждом сохранении.
type Repository struct {
	path     string
	rooms    []*domain.Room
	byNumber map[int]*domain.Room
}

// NewRepository создает новый экземпляр реестра комнат
func NewRepository(path string) *Repository {
	return &Repository{
		path:     path,
		byNumber: make(map[int]*domain.Room),
	}
}

// Load загружает реестр из файла.
// Если файла еще нет (первый запуск) - заполняет реестр стартовым
// набором комнат и сразу сохраняет его на диск.
func (r *Repository) Load(ctx context.Context) error {
	file, err := os.Open(r.path)
	if os.IsNotExist(err) {
		r.SeedDefaults()
		if err := r.Save(ctx); err != nil {
			return fmt.Errorf("%w: Load - seed initial rooms: %v", ErrWriteFile, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: Load - open %s: %v", ErrReadFile, r.path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return fmt.Errorf("%w: Load - parse %s: %v", ErrParseRecord, r.path, err)
	}

	loaded := make([]*domain.Room, 0, len(records))
	byNumber := make(map[int]*domain.Room, len(records))
	for i, record := range records {
		room, err := parseRoomRecord(record)
		if err != nil {
			return fmt.Errorf("%w: Load - line %d: %v", ErrParseRecord, i+1, err)
		}
		if _, ok := byNumber[room.Number]; ok {
			return fmt.Errorf("%w: Load - line %d: duplicate room number %d", ErrParseRecord, i+1, room.Number)
		}
		loaded = append(loaded, room)
		byNumber[room.Number] = room
	}

	r.rooms = loaded
	r.byNumber = byNumber
	return nil
}

// SeedDefaults заполняет реестр стартовым набором комнат.
// Используется только когда сохраненного состояния еще не существует.
func (r *Repository) SeedDefaults() {
	seeded := domain.SeedRooms()
	byNumber := make(map[int]*domain.Room, len(seeded))
	for _, room := range seeded {
		byNumber[room.Number] = room
	}
	r.rooms = seeded
	r.byNumber = byNumber
}

// Save полностью перезаписывает файл-снимок реестра.
// Снимок пишется во временный файл рядом и переименовывается поверх
// старого: упавшая запись не может оставить частично записанный файл.
func (r *Repository) Save(ctx context.Context) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: Save - create storage dir: %v", ErrWriteFile, err)
	}

	tmp, err := os.CreateTemp(dir, "rooms-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: Save - create temp file: %v", ErrWriteFile, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := csv.NewWriter(tmp)
	for _, room := range r.rooms {
		flag := flagAvailable
		if room.Booked {
			flag = flagBooked
		}
		record := []string{strconv.Itoa(room.Number), string(room.Category), flag}
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

// FindAvailableByCategory возвращает первую свободную комнату категории.
// Обход идет в порядке регистрации, поэтому при нескольких свободных
// комнатах выигрывает добавленная раньше.
func (r *Repository) FindAvailableByCategory(category domain.RoomCategory) (*domain.Room, error) {
	for _, room := range r.rooms {
		if room.Category == category && room.IsAvailable() {
			return room, nil
		}
	}
	return nil, ErrNoAvailableRoom
}

// ListAvailable возвращает все свободные комнаты в порядке реестра.
// Пустой реестр или полная занятость - пустой список, не ошибка.
func (r *Repository) ListAvailable() []*domain.Room {
	available := make([]*domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if room.IsAvailable() {
			available = append(available, room)
		}
	}
	return available
}

// ListAll возвращает все комнаты в порядке реестра
func (r *Repository) ListAll() []*domain.Room {
	all := make([]*domain.Room, len(r.rooms))
	copy(all, r.rooms)
	return all
}

// ByNumber возвращает комнату по номеру
func (r *Repository) ByNumber(number int) (*domain.Room, error) {
	room, ok := r.byNumber[number]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// parseRoomRecord разбирает запись вида "101,STANDARD,Available"
func parseRoomRecord(record []string) (*domain.Room, error) {
	if len(record) != roomRecordFields {
		return nil, fmt.Errorf("expected %d fields, got %d", roomRecordFields, len(record))
	}

	number, err := strconv.Atoi(record[0])
	if err != nil {
		return nil, fmt.Errorf("invalid room number %q", record[0])
	}

	category, err := domain.ParseRoomCategory(record[1])
	if err != nil {
		return nil, err
	}

	var booked bool
	switch record[2] {
	case flagBooked:
		booked = true
	case flagAvailable:
		booked = false
	default:
		return nil, fmt.Errorf("unknown availability flag %q", record[2])
	}

	return &domain.Room{Number: number, Category: category, Booked: booked}, nil
}
