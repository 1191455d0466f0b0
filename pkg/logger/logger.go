package logger

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger файловый логгер приложения с ротацией.
// Пишет только в лог-файл: stdout принадлежит консольному меню,
// а не логам.
type Logger struct {
	log    *logrus.Logger
	output *lumberjack.Logger
}

// New создает логгер, пишущий в файл file с уровнем level
// (debug, info, warn, error)
func New(file, level string) (*Logger, error) {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("logger: unknown level %q: %w", level, err)
	}

	output := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // мегабайт
		MaxBackups: 3,
		MaxAge:     28, // дней
		Compress:   true,
	}

	log := logrus.New()
	log.SetOutput(output)
	log.SetLevel(parsed)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Logger{log: log, output: output}, nil
}

// Debug пишет отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}

// Info пишет информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

// Warn пишет предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warnf(format, v...)
}

// Error пишет сообщение об ошибке
func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatalf(format, v...)
}

// Close закрывает файл лога
func (l *Logger) Close() error {
	return l.output.Close()
}
