package reservations

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/HRS-ReservationService/internal/domain"
	bookingsRepo "github.com/m04kA/HRS-ReservationService/internal/infra/storage/bookings"
	roomsRepo "github.com/m04kA/HRS-ReservationService/internal/infra/storage/rooms"
	"github.com/m04kA/HRS-ReservationService/internal/service/reservations/models"
)

// Service управляет состоянием брони: реестром комнат, журналом
// бронирований и счетчиком идентификаторов. Все операции проходят под
// общим мьютексом: поиск свободной комнаты и установка флага занятости
// должны быть неделимы, иначе два конкурентных вызова могли бы
// забронировать одну и ту же комнату.
type Service struct {
	mu            sync.Mutex
	rooms         RoomRegistry
	ledger        BookingLedger
	nextBookingID int
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирования
func NewService(rooms RoomRegistry, ledger BookingLedger, logger Logger) *Service {
	return &Service{
		rooms:         rooms,
		ledger:        ledger,
		nextBookingID: domain.BaseBookingID,
		logger:        logger,
	}
}

// LoadState загружает состояние с диска: сначала комнаты (или стартовый
// набор при первом запуске), затем бронирования с привязкой к уже
// загруженным комнатам. Ошибка чтения или разбора не мешает запуску:
// пострадавшая коллекция откатывается к стартовому набору комнат или
// пустому журналу с предупреждением в логе, работа продолжается в
// памяти. Счетчик идентификаторов восстанавливается как максимальный
// ID журнала + 1; флаги занятости выравниваются по журналу.
func (s *Service) LoadState(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rooms.Load(ctx); err != nil {
		s.logger.Warn("LoadState: failed to load rooms, falling back to the seeded registry: %v", err)
		s.rooms.SeedDefaults()
	}

	dropped, err := s.ledger.Load(ctx, s.rooms)
	if err != nil {
		s.logger.Warn("LoadState: failed to load bookings, continuing with an empty ledger: %v", err)
	}
	if dropped > 0 {
		s.logger.Warn("LoadState: dropped %d booking record(s) referencing unknown rooms", dropped)
	}

	s.nextBookingID = domain.BaseBookingID
	if highest, ok := s.ledger.HighestID(); ok {
		s.nextBookingID = highest + 1
	}

	s.reconcileAvailability()

	s.logger.Info("LoadState: loaded %d rooms, %d active bookings, next booking id=%d",
		len(s.rooms.ListAll()), len(s.ledger.ListAll()), s.nextBookingID)
}

// reconcileAvailability выравнивает флаги занятости по журналу: комната
// занята тогда и только тогда, когда на нее есть активное бронирование.
// Расхождение возможно после падения между записью двух файлов-снимков.
func (s *Service) reconcileAvailability() {
	booked := make(map[int]bool, len(s.ledger.ListAll()))
	for _, booking := range s.ledger.ListAll() {
		booked[booking.Room.Number] = true
	}
	for _, room := range s.rooms.ListAll() {
		if room.Booked != booked[room.Number] {
			s.logger.Warn("LoadState: room %d availability flag disagrees with ledger, repairing (booked=%v)",
				room.Number, booked[room.Number])
			room.Booked = booked[room.Number]
		}
	}
}

// ListAvailableRooms возвращает все свободные комнаты в порядке реестра
func (s *Service) ListAvailableRooms(ctx context.Context) *models.RoomListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.FromDomainRoomList(s.rooms.ListAvailable())
}

// ListBookings возвращает активные бронирования в порядке добавления
func (s *Service) ListBookings(ctx context.Context) *models.BookingListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.FromDomainBookingList(s.ledger.ListAll())
}

// BookRoom бронирует первую свободную комнату запрошенной категории.
// Выбор комнаты, установка флага, выдача идентификатора и запись обоих
// снимков выполняются как один неделимый шаг. При ошибке сохранения
// изменение откатывается в памяти и возвращается ErrPersistence.
func (s *Service) BookRoom(ctx context.Context, req *models.BookRoomRequest) (*models.BookingResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("BookRoom: booking request customer=%q category=%s", req.CustomerName, req.Category)

	room, err := s.rooms.FindAvailableByCategory(req.Category)
	if err != nil {
		if errors.Is(err, roomsRepo.ErrNoAvailableRoom) {
			s.logger.Warn("BookRoom: no available room in category=%s", req.Category)
			return nil, ErrNoRoomAvailable
		}
		s.logger.Error("BookRoom: registry error: %v", err)
		return nil, fmt.Errorf("%w: BookRoom - registry error: %v", ErrInternal, err)
	}

	room.Booked = true
	booking := &domain.Booking{
		ID:           s.nextBookingID,
		CustomerName: req.CustomerName,
		Room:         room,
		AmountPaid:   domain.PriceFor(room.Category),
	}
	s.ledger.Append(booking)

	if err := s.persistLocked(ctx); err != nil {
		// Откат: возвращаем память к состоянию до бронирования и
		// пытаемся вернуть на диск снимок реестра без этой брони
		s.ledger.RemoveByID(booking.ID)
		room.Booked = false
		s.restoreRoomsSnapshotLocked(ctx)
		s.logger.Error("BookRoom: persistence failed, rolled back booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: BookRoom - %v", ErrPersistence, err)
	}

	s.nextBookingID++
	s.logger.Info("BookRoom: booked room %d for customer=%q, booking id=%d amount=%.0f",
		room.Number, req.CustomerName, booking.ID, booking.AmountPaid)
	return models.FromDomainBooking(booking), nil
}

// CancelBooking снимает бронирование по идентификатору и освобождает
// комнату. При ошибке сохранения изменение откатывается в памяти.
func (s *Service) CancelBooking(ctx context.Context, bookingID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("CancelBooking: cancelling booking id=%d", bookingID)

	booking, index, err := s.ledger.RemoveByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingsRepo.ErrBookingNotFound) {
			s.logger.Warn("CancelBooking: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("CancelBooking: ledger error: %v", err)
		return fmt.Errorf("%w: CancelBooking - ledger error: %v", ErrInternal, err)
	}

	booking.Room.Booked = false

	if err := s.persistLocked(ctx); err != nil {
		// Откат: бронирование возвращается на прежнюю позицию журнала,
		// комната остается занятой
		booking.Room.Booked = true
		s.ledger.InsertAt(index, booking)
		s.restoreRoomsSnapshotLocked(ctx)
		s.logger.Error("CancelBooking: persistence failed, rolled back cancellation of id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: CancelBooking - %v", ErrPersistence, err)
	}

	s.logger.Info("CancelBooking: cancelled booking id=%d, room %d is available again",
		bookingID, booking.Room.Number)
	return nil
}

// persistLocked записывает оба файла-снимка. Вызывается только под
// мьютексом. Порядок фиксированный: сначала комнаты, затем бронирования.
func (s *Service) persistLocked(ctx context.Context) error {
	if err := s.rooms.Save(ctx); err != nil {
		return fmt.Errorf("save rooms: %v", err)
	}
	if err := s.ledger.Save(ctx); err != nil {
		return fmt.Errorf("save bookings: %v", err)
	}
	return nil
}

// restoreRoomsSnapshotLocked переписывает снимок реестра после отката
// изменения в памяти. Запись журнала могла упасть уже после записи
// реестра, тогда на диске остался снимок с откатанным изменением.
// Ошибка здесь не фатальна: расхождение чинится следующим LoadState
// через выравнивание флагов по журналу.
func (s *Service) restoreRoomsSnapshotLocked(ctx context.Context) {
	if err := s.rooms.Save(ctx); err != nil {
		s.logger.Warn("rollback: failed to restore rooms snapshot: %v", err)
	}
}
