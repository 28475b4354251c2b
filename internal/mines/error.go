package mines

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidSize      = errors.New("size must be in [1, MaxSize]")
	ErrInvalidMineCount = errors.New("mine count must be in [0, size*size)")
	ErrInvalidLayout    = errors.New("invalid mine layout")
)

// Reasons a reveal or mark request was a no-op. They are reported back in
// [RevealOutcome.Skipped] and [MarkOutcome.Skipped] and never returned as
// failures.
var (
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrGameFinished = errors.New("game is already finished")
	ErrCellRevealed = errors.New("cell is already revealed")
	ErrCellMarked   = errors.New("cell is marked")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

// ensure panics with [AssertionError] when condition is false
func ensure(condition bool, message string, fields logrus.Fields) {
	if condition {
		return
	}
	Log.WithFields(fields).Error("assertion failed: " + message)
	panic(AssertionError{message})
}
