package core

// logger.go — ежедневные журналы на zerolog: общий лог + отдельный лог ошибок.

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger держит пару zerolog-логгеров и их файлы. Доступ через глобальные
// функции LogInfo/LogError, чтобы не протаскивать логгер через все слои.
type Logger struct {
	mainLogger  *zerolog.Logger
	errorLogger *zerolog.Logger
	mainFile    *os.File
	errorFile   *os.File
	mu          sync.Mutex
}

var (
	globalLogger *Logger
	cleanupOnce  sync.Once
)

// InitDailyLog (пере)открывает журналы текущего дня. Вызывается на старте и
// затем раз в сутки из фоновой горутины.
func InitDailyLog() {
	// Закрываем предыдущие файлы, если есть
	if globalLogger != nil {
		globalLogger.mu.Lock()
		_ = globalLogger.mainFile.Close()
		_ = globalLogger.errorFile.Close()
		globalLogger.mu.Unlock()
		globalLogger = nil
	}

	if err := os.MkdirAll("logs", 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка создания директории logs: %v\n", err)
		os.Exit(1)
	}

	// Имена файлов по текущей дате
	dateStr := time.Now().Format("02-01-2006")
	mainPath := filepath.Join("logs", dateStr+".log")
	errorPath := filepath.Join("logs", "errors-"+dateStr+".log")

	mainFile, err := os.OpenFile(mainPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка открытия основного лог-файла: %v\n", err)
		os.Exit(1)
	}

	errorFile, err := os.OpenFile(errorPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка открытия файла ошибок: %v\n", err)
		_ = mainFile.Close()
		os.Exit(1)
	}

	mainLogger := zerolog.New(mainFile).With().Timestamp().Logger()
	errorLogger := zerolog.New(errorFile).With().Timestamp().Logger()

	globalLogger = &Logger{
		mainLogger:  &mainLogger,
		errorLogger: &errorLogger,
		mainFile:    mainFile,
		errorFile:   errorFile,
	}

	// Очистка старых логов — один раз за жизнь процесса
	cleanupOnce.Do(func() { go cleanupOldLogs("logs", 7) })
}

// LogInfo пишет информационное событие с произвольными полями.
func LogInfo(msg string, fields map[string]interface{}) {
	if globalLogger == nil {
		return // Логгер не инициализирован (например, в тестах) — молча пропускаем
	}
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	event := globalLogger.mainLogger.Info()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// LogError пишет ошибку в отдельный журнал ошибок.
func LogError(msg string, fields map[string]interface{}) {
	if globalLogger == nil {
		return
	}
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	event := globalLogger.errorLogger.Error()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// cleanupOldLogs удаляет журналы старше days дней.
func cleanupOldLogs(dir string, days int) {
	files, err := os.ReadDir(dir)
	if err != nil {
		LogError("Не удалось прочитать директорию логов", map[string]interface{}{"dir": dir, "error": err.Error()})
		return
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		info, err := file.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(dir, file.Name())
			if err := os.Remove(path); err != nil {
				LogError("Не удалось удалить старый лог", map[string]interface{}{"path": path, "error": err.Error()})
			}
		}
	}
}

// Close закрывает файлы журналов. Ошибки закрытия уходят в stderr —
// файловый логгер в этот момент уже ненадёжен.
func Close() {
	if globalLogger == nil {
		return
	}
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	consoleLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := globalLogger.mainFile.Close(); err != nil {
		consoleLogger.Error().Msgf("Закрытие mainFile: %v", err)
	}
	if err := globalLogger.errorFile.Close(); err != nil {
		consoleLogger.Error().Msgf("Закрытие errorFile: %v", err)
	}
	globalLogger = nil
}
