package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"rickorty/internal/config"
	"rickorty/internal/logging"
	"rickorty/internal/preflight"
	"rickorty/internal/server"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	log.Println("🚀 Starting Rickorty dev server...")

	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found or error loading it: %v", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize structured logging (JSON in production, text in dev)
	logging.Init(cfg)
	log.Printf("📋 Configuration loaded (Addr: %s, Static: %s)", cfg.Addr(), cfg.StaticDir)

	checker := preflight.NewChecker(cfg)
	if preflight.HasFailures(checker.RunAll()) {
		log.Fatal("❌ Pre-flight checks failed, refusing to start")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := server.New(cfg, reg)

	log.Printf("✅ Server ready on http://%s", cfg.Addr())
	log.Printf("📡 Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("🔑 Config endpoint: http://localhost:%s/api/config", cfg.Port)
	log.Printf("🔀 CharSnap proxy: POST http://localhost:%s/api/charsnap -> %s", cfg.Port, cfg.CharSnapEndpoint)
	log.Printf("📊 Prometheus metrics endpoint enabled at /metrics")

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("🛑 Shutting down server...")

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️ Error shutting down server: %v", err)
		}
	}()

	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

	log.Println("👋 Server stopped")
}
