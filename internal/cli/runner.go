package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m04kA/HRS-ReservationService/internal/domain"
	"github.com/m04kA/HRS-ReservationService/internal/service/reservations"
	"github.com/m04kA/HRS-ReservationService/internal/service/reservations/models"
)

// Пользовательские сообщения консоли
const (
	msgInvalidChoice    = "Invalid choice. Try again."
	msgInvalidCategory  = "Invalid room type entered."
	msgInvalidBookingID = "Invalid booking ID format."
	msgNoAvailableRooms = "No available rooms."
	msgNoBookings       = "No bookings yet."
	msgCategorySoldOut  = "No rooms available in selected category."
	msgBookingNotFound  = "Booking ID not found."
	msgBookingConfirmed = "Payment Successful. Booking Confirmed!"
	msgBookingCancelled = "Booking cancelled successfully."
	msgPersistFailed    = "Could not save changes to disk. The operation was rolled back."
	msgChatDisabled     = "Chat assistant is disabled."
	msgGoodbye          = "Exiting application. Goodbye!"
)

// Runner консольное меню приложения: главное меню с чат-ассистентом и
// консоль бронирования. Весь разбор пользовательского ввода живет здесь;
// сервис получает только типизированные значения.
type Runner struct {
	service ReservationService
	chat    ChatLauncher
	logger  Logger
	in      *bufio.Scanner
	out     io.Writer
}

// NewRunner создает новый экземпляр консольного меню
func NewRunner(service ReservationService, chat ChatLauncher, logger Logger, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		service: service,
		chat:    chat,
		logger:  logger,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run запускает главное меню. Возвращается при выборе выхода
// или окончании ввода.
func (r *Runner) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Welcome to the Hotel Reservation System")

	for {
		fmt.Fprintln(r.out, "\n===== Main Menu =====")
		fmt.Fprintln(r.out, "1. Open chat assistant")
		fmt.Fprintln(r.out, "2. Hotel reservation console")
		fmt.Fprintln(r.out, "3. Exit")

		choice, ok := r.readLine("Enter choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			r.openChat()
		case "2":
			if err := r.runReservationConsole(ctx); err != nil {
				return err
			}
		case "3":
			fmt.Fprintln(r.out, msgGoodbye)
			return nil
		default:
			fmt.Fprintln(r.out, msgInvalidChoice)
		}
	}
}

// openChat открывает окно чат-ассистента, если он включен в конфигурации
func (r *Runner) openChat() {
	if r.chat == nil {
		fmt.Fprintln(r.out, msgChatDisabled)
		return
	}
	if err := r.chat.Run(); err != nil {
		r.logger.Error("Chat window failed: %v", err)
		fmt.Fprintf(r.out, "Chat window failed: %v\n", err)
	}
}

// runReservationConsole цикл консоли бронирования
func (r *Runner) runReservationConsole(ctx context.Context) error {
	for {
		fmt.Fprintln(r.out, "\n--- Hotel Reservation System ---")
		fmt.Fprintln(r.out, "1. View Available Rooms")
		fmt.Fprintln(r.out, "2. Book Room")
		fmt.Fprintln(r.out, "3. Cancel Booking")
		fmt.Fprintln(r.out, "4. View Bookings")
		fmt.Fprintln(r.out, "5. Back to Main Menu")

		choice, ok := r.readLine("Choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			r.handleListAvailable(ctx)
		case "2":
			if done := r.handleBook(ctx); done {
				return nil
			}
		case "3":
			if done := r.handleCancel(ctx); done {
				return nil
			}
		case "4":
			r.handleListBookings(ctx)
		case "5":
			return nil
		default:
			fmt.Fprintln(r.out, msgInvalidChoice)
		}
	}
}

// handleListAvailable печатает свободные комнаты
func (r *Runner) handleListAvailable(ctx context.Context) {
	resp := r.service.ListAvailableRooms(ctx)
	if len(resp.Rooms) == 0 {
		fmt.Fprintln(r.out, msgNoAvailableRooms)
		return
	}
	for _, room := range resp.Rooms {
		fmt.Fprintln(r.out, renderRoom(room))
	}
}

// handleBook запрашивает имя и категорию и бронирует комнату.
// Некорректная категория - ошибка ввода с повторным запросом.
// Возвращает true, если ввод закончился.
func (r *Runner) handleBook(ctx context.Context) bool {
	name, ok := r.readLine("Enter your name: ")
	if !ok {
		return true
	}

	var category domain.RoomCategory
	for {
		raw, ok := r.readLine("Enter room type (STANDARD, DELUXE, SUITE): ")
		if !ok {
			return true
		}
		parsed, err := domain.ParseRoomCategory(raw)
		if err != nil {
			fmt.Fprintln(r.out, msgInvalidCategory)
			continue
		}
		category = parsed
		break
	}

	booking, err := r.service.BookRoom(ctx, &models.BookRoomRequest{
		CustomerName: name,
		Category:     category,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrNoRoomAvailable):
			fmt.Fprintln(r.out, msgCategorySoldOut)
		case errors.Is(err, reservations.ErrPersistence):
			fmt.Fprintln(r.out, msgPersistFailed)
		default:
			r.logger.Error("Book room failed: %v", err)
			fmt.Fprintln(r.out, "Booking failed due to an internal error.")
		}
		return false
	}

	fmt.Fprintln(r.out, msgBookingConfirmed)
	fmt.Fprintln(r.out, renderBooking(*booking))
	return false
}

// handleCancel запрашивает идентификатор и снимает бронирование.
// Нечисловой ввод - ошибка ввода, а не падение.
// Возвращает true, если ввод закончился.
func (r *Runner) handleCancel(ctx context.Context) bool {
	raw, ok := r.readLine("Enter booking ID to cancel: ")
	if !ok {
		return true
	}

	bookingID, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(r.out, msgInvalidBookingID)
		return false
	}

	if err := r.service.CancelBooking(ctx, bookingID); err != nil {
		switch {
		case errors.Is(err, reservations.ErrBookingNotFound):
			fmt.Fprintln(r.out, msgBookingNotFound)
		case errors.Is(err, reservations.ErrPersistence):
			fmt.Fprintln(r.out, msgPersistFailed)
		default:
			r.logger.Error("Cancel booking failed: %v", err)
			fmt.Fprintln(r.out, "Cancellation failed due to an internal error.")
		}
		return false
	}

	fmt.Fprintln(r.out, msgBookingCancelled)
	return false
}

// handleListBookings печатает активные бронирования
func (r *Runner) handleListBookings(ctx context.Context) {
	resp := r.service.ListBookings(ctx)
	if len(resp.Bookings) == 0 {
		fmt.Fprintln(r.out, msgNoBookings)
		return
	}
	for _, booking := range resp.Bookings {
		fmt.Fprintln(r.out, "--------------------")
		fmt.Fprintln(r.out, renderBooking(booking))
	}
}

// readLine печатает приглашение и читает строку ввода.
// Второе значение false означает конец ввода.
func (r *Runner) readLine(prompt string) (string, bool) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

// renderRoom форматирует комнату для вывода в консоль
func renderRoom(room models.RoomResponse) string {
	state := "Booked"
	if room.Available {
		state = "Available"
	}
	return fmt.Sprintf("Room %d (%s) - %s", room.Number, room.Category, state)
}

// renderBooking форматирует бронирование для вывода в консоль
func renderBooking(b models.BookingResponse) string {
	return fmt.Sprintf("Booking ID: %d\nCustomer: %s\nRoom: Room %d (%s) - Booked\nAmount Paid: %.0f",
		b.ID, b.CustomerName, b.RoomNumber, b.RoomCategory, b.AmountPaid)
}
