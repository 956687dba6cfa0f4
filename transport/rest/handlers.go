package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/ticboard-backend/internal/apperror"
	"github.com/rocketscienceinc/ticboard-backend/internal/entity"
	"github.com/rocketscienceinc/ticboard-backend/internal/repository"
	"github.com/rocketscienceinc/ticboard-backend/internal/usecase"
)

type boardService interface {
	CreateBoard(ctx context.Context, cells *[entity.BoardSize]string) (*usecase.BoardState, error)
	UpdateBoard(ctx context.Context, id string, cells [entity.BoardSize]string) (*usecase.BoardState, error)
	GetBoard(ctx context.Context, id string) (*usecase.BoardState, error)
	RenderBoard(ctx context.Context, id string) (string, error)
	DeleteBoard(ctx context.Context, id string) error
}

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	CreateBoard(w http.ResponseWriter, r *http.Request)
	UpdateBoard(w http.ResponseWriter, r *http.Request)
	GetBoard(w http.ResponseWriter, r *http.Request)
	RenderBoard(w http.ResponseWriter, r *http.Request)
	DeleteBoard(w http.ResponseWriter, r *http.Request)
}

type handlers struct {
	logger *slog.Logger
	boards boardService
}

func NewHandlers(logger *slog.Logger, boards boardService) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		boards: boards,
	}
}

type boardRequest struct {
	Cells []string `json:"cells"`
}

func toCells(raw []string) (*[entity.BoardSize]string, error) {
	if len(raw) != entity.BoardSize {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardLength, len(raw))
	}

	var cells [entity.BoardSize]string
	copy(cells[:], raw)

	return &cells, nil
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Malformed board payload", http.StatusBadRequest)
			return
		}
	}

	var cells *[entity.BoardSize]string
	if req.Cells != nil {
		var err error
		if cells, err = toCells(req.Cells); err != nil {
			that.writeError(w, err)
			return
		}
	}

	state, err := that.boards.CreateBoard(r.Context(), cells)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, state)
}

func (that *handlers) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cells == nil {
		http.Error(w, "Malformed board payload", http.StatusBadRequest)
		return
	}

	cells, err := toCells(req.Cells)
	if err != nil {
		that.writeError(w, err)
		return
	}

	state, err := that.boards.UpdateBoard(r.Context(), r.PathValue("id"), *cells)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, state)
}

func (that *handlers) GetBoard(w http.ResponseWriter, r *http.Request) {
	state, err := that.boards.GetBoard(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, state)
}

func (that *handlers) RenderBoard(w http.ResponseWriter, r *http.Request) {
	rendered, err := that.boards.RenderBoard(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write([]byte(rendered + "\n")); err != nil {
		that.logger.Error("could not write rendered board", "error", err)
	}
}

func (that *handlers) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	if err := that.boards.DeleteBoard(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("could not encode response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrBoardNotFound):
		http.Error(w, "Board not found", http.StatusNotFound)
	case errors.Is(err, apperror.ErrInvalidCellValue), errors.Is(err, apperror.ErrInvalidBoardLength):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		that.logger.Error("request failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
