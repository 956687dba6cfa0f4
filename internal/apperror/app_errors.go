package apperror

import "errors"

var (
	ErrInvalidCellValue   = errors.New("invalid cell value")
	ErrInvalidBoardLength = errors.New("board must have exactly 9 cells")
)
