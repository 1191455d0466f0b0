package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Значения по умолчанию
const (
	defaultStorageDir   = "data"
	defaultRoomsFile    = "rooms.txt"
	defaultBookingsFile = "bookings.txt"
	defaultLogFile      = "logs/app.log"
	defaultLogLevel     = "info"
)

// Config конфигурация приложения
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Logs    LogsConfig    `toml:"logs"`
	Chat    ChatConfig    `toml:"chat"`
}

// StorageConfig настройки файлового хранилища
type StorageConfig struct {
	Dir          string `toml:"dir"`
	RoomsFile    string `toml:"rooms_file"`
	BookingsFile string `toml:"bookings_file"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// ChatConfig настройки чат-ассистента
type ChatConfig struct {
	Enabled bool `toml:"enabled"`
}

// Load читает конфигурацию из TOML-файла.
// Отсутствующий файл - не ошибка: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaults возвращает конфигурацию со значениями по умолчанию
func defaults() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir:          defaultStorageDir,
			RoomsFile:    defaultRoomsFile,
			BookingsFile: defaultBookingsFile,
		},
		Logs: LogsConfig{
			File:  defaultLogFile,
			Level: defaultLogLevel,
		},
		Chat: ChatConfig{
			Enabled: true,
		},
	}
}

// validate проверяет заполненность обязательных полей
func (c *Config) validate() error {
	if c.Storage.Dir == "" {
		return fmt.Errorf("config: storage.dir must not be empty")
	}
	if c.Storage.RoomsFile == "" {
		return fmt.Errorf("config: storage.rooms_file must not be empty")
	}
	if c.Storage.BookingsFile == "" {
		return fmt.Errorf("config: storage.bookings_file must not be empty")
	}
	if c.Storage.RoomsFile == c.Storage.BookingsFile {
		return fmt.Errorf("config: rooms and bookings must use different files")
	}
	if c.Logs.File == "" {
		return fmt.Errorf("config: logs.file must not be empty")
	}
	return nil
}

// RoomsPath возвращает полный путь к файлу реестра комнат
func (c *Config) RoomsPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.RoomsFile)
}

// BookingsPath возвращает полный путь к файлу журнала бронирований
func (c *Config) BookingsPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.BookingsFile)
}
