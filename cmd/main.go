package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/m04kA/HRS-ReservationService/internal/chatui"
	"github.com/m04kA/HRS-ReservationService/internal/cli"
	"github.com/m04kA/HRS-ReservationService/internal/config"
	bookingsRepo "github.com/m04kA/HRS-ReservationService/internal/infra/storage/bookings"
	roomsRepo "github.com/m04kA/HRS-ReservationService/internal/infra/storage/rooms"
	chatService "github.com/m04kA/HRS-ReservationService/internal/service/chat"
	reservationsService "github.com/m04kA/HRS-ReservationService/internal/service/reservations"
	"github.com/m04kA/HRS-ReservationService/pkg/logger"
)

func main() {
	configPath := pflag.String("config", "config.toml", "path to the configuration file")
	chatOnly := pflag.Bool("chat", false, "open the chat assistant window and exit")
	pflag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HRS-ReservationService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Чат-ассистент: чистый респондер плюс терминальное окно
	responder := chatService.NewService()

	// Режим "только чат": окно ассистента без консоли бронирования
	if *chatOnly {
		if err := chatui.Run(responder); err != nil {
			log.Fatal("Chat window failed: %v", err)
		}
		return
	}

	ctx := context.Background()

	// Инициализируем файловые репозитории
	roomRepository := roomsRepo.NewRepository(cfg.RoomsPath())
	bookingRepository := bookingsRepo.NewRepository(cfg.BookingsPath())

	// Инициализируем сервис бронирования и загружаем состояние:
	// сначала комнаты (или стартовый набор), затем бронирования.
	// Ошибки загрузки не фатальны: пострадавшая коллекция откатывается
	// к стартовому или пустому состоянию с предупреждением в логе.
	reservationSvc := reservationsService.NewService(roomRepository, bookingRepository, log)
	reservationSvc.LoadState(ctx)
	log.Info("Reservation state loaded (rooms=%s, bookings=%s)", cfg.RoomsPath(), cfg.BookingsPath())

	var chatLauncher cli.ChatLauncher
	if cfg.Chat.Enabled {
		chatLauncher = chatui.NewLauncher(responder)
	}

	// Запускаем консольное меню
	runner := cli.NewRunner(reservationSvc, chatLauncher, log, os.Stdin, os.Stdout)
	if err := runner.Run(ctx); err != nil {
		log.Fatal("Console menu failed: %v", err)
	}

	log.Info("Shutting down")
}
