package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ticboard-backend/internal/apperror"
	"github.com/rocketscienceinc/ticboard-backend/internal/entity"
	"github.com/rocketscienceinc/ticboard-backend/internal/repository"
	"github.com/rocketscienceinc/ticboard-backend/internal/usecase"
)

type stubBoardService struct {
	createFunc func(ctx context.Context, cells *[entity.BoardSize]string) (*usecase.BoardState, error)
	updateFunc func(ctx context.Context, id string, cells [entity.BoardSize]string) (*usecase.BoardState, error)
	getFunc    func(ctx context.Context, id string) (*usecase.BoardState, error)
	renderFunc func(ctx context.Context, id string) (string, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (that *stubBoardService) CreateBoard(ctx context.Context, cells *[entity.BoardSize]string) (*usecase.BoardState, error) {
	return that.createFunc(ctx, cells)
}

func (that *stubBoardService) UpdateBoard(ctx context.Context, id string, cells [entity.BoardSize]string) (*usecase.BoardState, error) {
	return that.updateFunc(ctx, id, cells)
}

func (that *stubBoardService) GetBoard(ctx context.Context, id string) (*usecase.BoardState, error) {
	return that.getFunc(ctx, id)
}

func (that *stubBoardService) RenderBoard(ctx context.Context, id string) (string, error) {
	return that.renderFunc(ctx, id)
}

func (that *stubBoardService) DeleteBoard(ctx context.Context, id string) error {
	return that.deleteFunc(ctx, id)
}

func newTestHandlers(boards boardService) Handlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandlers(logger, boards)
}

func TestPingHandler(t *testing.T) {
	// Given: handlers with no service behind them
	h := newTestHandlers(&stubBoardService{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	// When: pinging
	h.PingHandler(rec, req)

	// Then: pong
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestCreateBoard(t *testing.T) {
	t.Run("Creates a default board on an empty body", func(t *testing.T) {
		// Given: a service that records the cells it was given
		var gotCells *[entity.BoardSize]string
		h := newTestHandlers(&stubBoardService{
			createFunc: func(_ context.Context, cells *[entity.BoardSize]string) (*usecase.BoardState, error) {
				gotCells = cells
				return &usecase.BoardState{ID: "abc", CurrentPlayer: entity.PlayerX}, nil
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/boards", nil)
		rec := httptest.NewRecorder()

		// When: creating without a payload
		h.CreateBoard(rec, req)

		// Then: the service should see nil cells and respond 201
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Nil(t, gotCells)

		var state usecase.BoardState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
		assert.Equal(t, "abc", state.ID)
	})

	t.Run("Passes supplied cells to the service", func(t *testing.T) {
		// Given: a service that records the cells it was given
		var gotCells *[entity.BoardSize]string
		h := newTestHandlers(&stubBoardService{
			createFunc: func(_ context.Context, cells *[entity.BoardSize]string) (*usecase.BoardState, error) {
				gotCells = cells
				return &usecase.BoardState{ID: "abc"}, nil
			},
		})

		body := `{"cells":["X","O","X"," "," "," "," "," "," "]}`
		req := httptest.NewRequest(http.MethodPost, "/boards", strings.NewReader(body))
		rec := httptest.NewRecorder()

		// When: creating with a board payload
		h.CreateBoard(rec, req)

		// Then: the decoded cells should reach the service
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, gotCells)
		assert.Equal(t, entity.PlayerX, gotCells[0])
		assert.Equal(t, entity.PlayerO, gotCells[1])
	})

	t.Run("Responds 400 on invalid cell values", func(t *testing.T) {
		// Given: a service that rejects the cells
		h := newTestHandlers(&stubBoardService{
			createFunc: func(_ context.Context, _ *[entity.BoardSize]string) (*usecase.BoardState, error) {
				return nil, apperror.ErrInvalidCellValue
			},
		})

		body := `{"cells":["Z"," "," "," "," "," "," "," "," "]}`
		req := httptest.NewRequest(http.MethodPost, "/boards", strings.NewReader(body))
		rec := httptest.NewRecorder()

		// When: creating with bad cells
		h.CreateBoard(rec, req)

		// Then: 400
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Responds 400 on a wrong-length board", func(t *testing.T) {
		// Given: any handlers
		h := newTestHandlers(&stubBoardService{})

		body := `{"cells":["X","O"]}`
		req := httptest.NewRequest(http.MethodPost, "/boards", strings.NewReader(body))
		rec := httptest.NewRecorder()

		// When: creating with only two cells
		h.CreateBoard(rec, req)

		// Then: 400
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Responds 400 on a malformed payload", func(t *testing.T) {
		// Given: any handlers
		h := newTestHandlers(&stubBoardService{})

		req := httptest.NewRequest(http.MethodPost, "/boards", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()

		// When: creating with broken JSON
		h.CreateBoard(rec, req)

		// Then: 400
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetBoard(t *testing.T) {
	t.Run("Returns the board state as JSON", func(t *testing.T) {
		// Given: a service holding a board with three marks
		h := newTestHandlers(&stubBoardService{
			getFunc: func(_ context.Context, id string) (*usecase.BoardState, error) {
				return &usecase.BoardState{ID: id, TurnCount: 3, CurrentPlayer: entity.PlayerO}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/boards/abc", nil)
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()

		// When: fetching the board
		h.GetBoard(rec, req)

		// Then: the derived values should be in the response
		require.Equal(t, http.StatusOK, rec.Code)

		var state usecase.BoardState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
		assert.Equal(t, "abc", state.ID)
		assert.Equal(t, 3, state.TurnCount)
		assert.Equal(t, entity.PlayerO, state.CurrentPlayer)
	})

	t.Run("Responds 404 for an unknown board", func(t *testing.T) {
		// Given: a service with no such board
		h := newTestHandlers(&stubBoardService{
			getFunc: func(_ context.Context, _ string) (*usecase.BoardState, error) {
				return nil, repository.ErrBoardNotFound
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/boards/missing", nil)
		req.SetPathValue("id", "missing")
		rec := httptest.NewRecorder()

		// When: fetching the board
		h.GetBoard(rec, req)

		// Then: 404
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRenderBoard(t *testing.T) {
	t.Run("Returns the grid as plain text", func(t *testing.T) {
		// Given: a service rendering an empty grid
		rendered := "   |   |   \n" +
			"-----------\n" +
			"   |   |   \n" +
			"-----------\n" +
			"   |   |   "
		h := newTestHandlers(&stubBoardService{
			renderFunc: func(_ context.Context, _ string) (string, error) {
				return rendered, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/boards/abc/render", nil)
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()

		// When: requesting the rendering
		h.RenderBoard(rec, req)

		// Then: the body should be the grid plus a trailing newline
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, rendered+"\n", rec.Body.String())
	})
}

func TestUpdateBoard(t *testing.T) {
	t.Run("Responds 400 when cells are missing", func(t *testing.T) {
		// Given: any handlers
		h := newTestHandlers(&stubBoardService{})

		req := httptest.NewRequest(http.MethodPut, "/boards/abc", strings.NewReader(`{}`))
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()

		// When: updating without cells
		h.UpdateBoard(rec, req)

		// Then: 400
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Stores the supplied snapshot", func(t *testing.T) {
		// Given: a service that echoes the update
		h := newTestHandlers(&stubBoardService{
			updateFunc: func(_ context.Context, id string, cells [entity.BoardSize]string) (*usecase.BoardState, error) {
				return &usecase.BoardState{ID: id, Cells: cells, TurnCount: 1, CurrentPlayer: entity.PlayerO}, nil
			},
		})

		body := `{"cells":["X"," "," "," "," "," "," "," "," "]}`
		req := httptest.NewRequest(http.MethodPut, "/boards/abc", strings.NewReader(body))
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()

		// When: updating the board
		h.UpdateBoard(rec, req)

		// Then: the fresh state comes back
		require.Equal(t, http.StatusOK, rec.Code)

		var state usecase.BoardState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
		assert.Equal(t, 1, state.TurnCount)
	})
}

func TestDeleteBoard(t *testing.T) {
	t.Run("Responds 204 on success", func(t *testing.T) {
		// Given: a service that accepts the delete
		h := newTestHandlers(&stubBoardService{
			deleteFunc: func(_ context.Context, _ string) error {
				return nil
			},
		})

		req := httptest.NewRequest(http.MethodDelete, "/boards/abc", nil)
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()

		// When: deleting the board
		h.DeleteBoard(rec, req)

		// Then: 204
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
