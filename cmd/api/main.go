package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "resume-extractor/docs" // Swagger docs
	"resume-extractor/internal/api"
	"resume-extractor/internal/config"
	"resume-extractor/internal/storage"
)

// @title Resume Extraction API
// @version 1.0
// @description Heuristic resume parsing service: upload a PDF/DOCX resume and get structured fields back

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := config.LoadConfig()

	var db *storage.DB
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, running in parse-only mode (no persistence)")
	} else {
		log.Println("Connecting to database...")
		var err error
		db, err = storage.NewDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("db open:", err)
		}
		defer db.Close()

		if err := db.EnsureSchema(context.Background()); err != nil {
			log.Fatal("schema init:", err)
		}
		log.Println("Database connected successfully!")
	}

	apiSrv := api.NewAPI(db, cfg)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second, // file uploads
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
