package core

// config.go

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Режимы источника энтропии (см. internal/nonce): crypto — ГСЧ операционной
// системы, clock — резервный генератор с затравкой от часов (НЕ криптостойкий).
const (
	EntropyCrypto = "crypto"
	EntropyClock  = "clock"
)

// Config определяет настройки приложения (OWASP A05: Security Misconfiguration).
type Config struct {
	AppName     string `validate:"required"`                  // Имя приложения
	Addr        string `validate:"required"`                  // Адрес HTTP-сервера (например, ":8080")
	Env         string `validate:"oneof=dev staging prod"`    // Среда выполнения
	EntropyMode string `validate:"oneof=crypto clock"`        // Источник энтропии для CSP nonce
	CSRFKey     string `validate:"required"`                  // Секрет CSRF-защиты
	Secure      bool   // Включает HTTPS и связанные настройки безопасности
	CertFile    string // Путь к TLS-сертификату
	KeyFile     string // Путь к TLS-ключу

	ShutdownTimeout   time.Duration // Таймаут graceful shutdown
	ReadHeaderTimeout time.Duration // Таймаут чтения заголовков HTTP-запроса
	ReadTimeout       time.Duration // Таймаут чтения HTTP-запроса
	WriteTimeout      time.Duration // Таймаут записи HTTP-ответа
	IdleTimeout       time.Duration // Таймаут простоя соединения
	RequestTimeout    time.Duration // Таймаут обработки запроса в middleware
}

var validate = validator.New()

// Load загружает конфигурацию из переменных окружения со значениями по
// умолчанию и валидирует её. Некорректная конфигурация — причина не
// стартовать вовсе.
func Load() Config {
	cfg := Config{
		AppName:           getEnv("APP_NAME", "cspApp"),
		Addr:              getEnv("HTTP_ADDR", ":8080"),
		Env:               getEnv("APP_ENV", "dev"),
		EntropyMode:       getEnv("ENTROPY_MODE", EntropyCrypto),
		CSRFKey:           getEnv("CSRF_KEY", "dev-insecure-csrf-key-change-me"),
		Secure:            getEnv("SECURE", "") == "true",
		CertFile:          getEnv("TLS_CERT_FILE", ""),
		KeyFile:           getEnv("TLS_KEY_FILE", ""),
		ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		ReadHeaderTimeout: getEnvDuration("READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       getEnvDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:      getEnvDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:       getEnvDuration("IDLE_TIMEOUT", 60*time.Second),
		RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
	}

	// Структурная валидация (те же теги, что и для пользовательских форм)
	if err := validate.Struct(cfg); err != nil {
		LogError("Некорректная конфигурация", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// Дополнительные проверки для продакшен-среды
	if cfg.Env == "prod" {
		if len(cfg.CSRFKey) < 32 {
			LogError("Недостаточная длина CSRF_KEY в продакшене", map[string]interface{}{"length": len(cfg.CSRFKey)})
			os.Exit(1)
		}
		if cfg.Secure && (cfg.CertFile == "" || cfg.KeyFile == "") {
			LogError("Отсутствует TLS_CERT_FILE или TLS_KEY_FILE в продакшене", nil)
			os.Exit(1)
		}
		if cfg.EntropyMode == EntropyClock {
			// Режим разрешён, но это осознанное снижение безопасности
			LogError("ENTROPY_MODE=clock в продакшене: CSP nonce не криптостойкий", nil)
		}
	}

	return cfg
}

// getEnv возвращает значение переменной окружения или значение по умолчанию.
func getEnv(key, def string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	return val
}

// getEnvDuration возвращает длительность из переменной окружения или
// значение по умолчанию при пустом/неразборчивом значении.
func getEnvDuration(key string, def time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		LogError("Неверный формат длительности", map[string]interface{}{"key": key, "value": val, "error": err.Error()})
		return def
	}
	return d
}
