package main

// main.go

import (
	"context"
	"crypto/sha256"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"

	"cspApp/internal/core"
	httpx "cspApp/internal/http"
	"cspApp/internal/nonce"
	"cspApp/internal/view"
)

func main() {
	// 1) Конфиг и логи
	core.InitDailyLog()
	cfg := core.Load()
	log.Printf("INFO: app=%s env=%s entropy=%s secure=%v", cfg.AppName, cfg.Env, cfg.EntropyMode, cfg.Secure)

	// 2) Шаблоны
	tpl, err := view.New()
	if err != nil {
		core.LogError("Ошибка инициализации шаблонов", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// 3) Источник энтропии и резолвер nonce (выбор варианта — только здесь)
	resolver := nonce.NewResolver(newEntropySource(cfg))

	// 4) Маршрутизатор + CSRF-защита поверх него
	handler := csrf.Protect(
		derive32(cfg.CSRFKey),
		csrf.Secure(cfg.Secure),
		csrf.Path("/"),
	)(httpx.NewRouter(cfg, tpl, resolver))

	// 5) HTTP-сервер с таймаутами (OWASP A05)
	srv := newHTTPServer(cfg, handler)

	// 6) Контекст для фоновых задач и перехват сигналов
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startLogRotation(ctx)

	sigs, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7) Запуск и ожидание завершения
	runServer(srv, cfg)
	waitShutdown(sigs, srv, cfg)

	// 8) Закрытие ресурсов
	core.Close()
}

// newEntropySource выбирает источник по конфигурации. Резервный режим —
// осознанное снижение безопасности, о чём предупреждаем в логе.
func newEntropySource(cfg core.Config) nonce.Source {
	if cfg.EntropyMode == core.EntropyClock {
		core.LogError("Используется резервный источник энтропии: CSP nonce не криптостойкий", nil)
		return nonce.NewClockSource()
	}
	return nonce.NewCryptoSource()
}

// newHTTPServer — таймауты сервера (защита от Slowloris/DoS).
func newHTTPServer(cfg core.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    1 << 20, // 1MB
	}
}

// startLogRotation — ротация журналов раз в сутки.
func startLogRotation(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				core.InitDailyLog()
			}
		}
	}()
}

// runServer — запуск в горутине; с TLS при SECURE=true.
func runServer(srv *http.Server, cfg core.Config) {
	go func() {
		log.Printf("INFO: http: сервер запущен, addr=%s, env=%s", cfg.Addr, cfg.Env)

		var err error
		if cfg.Secure && cfg.CertFile != "" && cfg.KeyFile != "" {
			err = srv.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			core.LogError("Ошибка работы сервера", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
	}()
}

// waitShutdown — ожидание сигнала и корректное завершение.
func waitShutdown(sigs context.Context, srv *http.Server, cfg core.Config) {
	<-sigs.Done()
	log.Println("INFO: http: начат процесс завершения")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		core.LogError("Ошибка завершения сервера", map[string]interface{}{"error": err.Error()})
	} else {
		log.Println("INFO: http: завершение выполнено")
	}
}

// derive32 — 32-байтовый ключ CSRF из секрета (OWASP A02).
func derive32(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}
