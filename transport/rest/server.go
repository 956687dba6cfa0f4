package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Start - starts the HTTP server exposing the board snapshot API.
func Start(logger *slog.Logger, port string, boards boardService) error {
	handlers := NewHandlers(logger, boards)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", handlers.PingHandler)
	mux.HandleFunc("POST /boards", handlers.CreateBoard)
	mux.HandleFunc("GET /boards/{id}", handlers.GetBoard)
	mux.HandleFunc("PUT /boards/{id}", handlers.UpdateBoard)
	mux.HandleFunc("GET /boards/{id}/render", handlers.RenderBoard)
	mux.HandleFunc("DELETE /boards/{id}", handlers.DeleteBoard)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
