package pkg

import (
	"crypto/rand"
	"encoding/hex"
)

const boardIDLength = 8

// GenerateNewBoardID - returns a random hex identifier for a new board.
func GenerateNewBoardID() string {
	buf := make([]byte, boardIDLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // rand.Read only fails when the OS entropy source is broken
	}

	return hex.EncodeToString(buf)
}
