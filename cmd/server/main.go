package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"contract-summarizer/internal/config"
	"contract-summarizer/internal/handler"
	"contract-summarizer/internal/shim"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Register the browser-shape capabilities the PDF pipeline expects.
	shim.Install()

	// Wiring
	container := config.NewContainer()

	if container.Config.GetAnthropicAPIKey() == "" {
		container.Logger.Warn("ANTHROPIC_API_KEY is not set; summarize requests will fail")
	}

	// Handlers
	summarizeHandler := handler.NewSummarizeHandler(
		container.SummaryService,
		container.Config,
		container.Logger,
	)

	exportHandler := handler.NewExportHandler(
		container.ExportService,
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		summarizeHandler,
		exportHandler,
	)

	// start server
	server := &http.Server{
		Addr:    ":" + container.Config.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	_ = server.Close()

	container.Logger.Info("Server exited")
}
