// Package errors provides sentinel errors and error types for the chess game.
// It defines the rejection reasons of board and game operations and
// structured error types that preserve context while allowing error
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrEmptyCell indicates there is no occupant on the source square.
	ErrEmptyCell = errors.New("empty cell")

	// ErrOccupiedCell indicates the target square already holds a piece.
	ErrOccupiedCell = errors.New("occupied cell")

	// ErrOpponentPiece indicates a pick of a piece not owned by the side to move.
	ErrOpponentPiece = errors.New("opponent piece")

	// ErrInvalidMove indicates a target outside the piece's legal moves.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidPosition indicates a malformed or out-of-range coordinate.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrOutOfBoard indicates an offset that leaves the board.
	// It also matches ErrInvalidPosition.
	ErrOutOfBoard = fmt.Errorf("out of board: %w", ErrInvalidPosition)

	// ErrSideNotChanged indicates a pick before the previous turn resolved.
	ErrSideNotChanged = errors.New("side not changed")

	// ErrSideAlreadyChanged indicates a side change with no placed piece.
	ErrSideAlreadyChanged = errors.New("side already changed")

	// ErrAlonePiece indicates a piece handle that holds no board.
	ErrAlonePiece = errors.New("piece has no board")

	// ErrGameOver indicates an operation on an ended game.
	ErrGameOver = errors.New("game over")

	// ErrBoardOnLoan indicates the game board is held by a picked piece.
	ErrBoardOnLoan = errors.New("board is on loan to a picked piece")

	// ErrPieceConsumed indicates reuse of a piece handle after placement.
	ErrPieceConsumed = errors.New("piece already placed")

	// ErrUnsupported indicates a chess rule this game does not implement.
	ErrUnsupported = errors.New("not supported")

	// ErrUnknownCommand indicates a script line that names no command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidFEN indicates a malformed FEN piece placement.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected placement with the move context.
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // 1-based ply of the attempt (0 if not applicable)
	Side string // Side that attempted the move
	From string // Origin square
	To   string // Target square (empty for a pick)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Side != "" {
		parts = append(parts, e.Side)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("square %s", e.From))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// UnsupportedError names a chess rule that is recognised but not implemented.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Feature, ErrUnsupported)
}

// Unwrap returns ErrUnsupported.
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// Unsupported returns an UnsupportedError for feature.
func Unsupported(feature string) error {
	return &UnsupportedError{Feature: feature}
}

// ParseError represents a parsing error with input location context.
// It's used for move scripts and FEN placements.
type ParseError struct {
	Err    error  // The underlying error
	File   string // Source file name
	Line   int    // Line number (1-based)
	Input  string // The offending text
	Reason string // What was wrong with it
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It forwards to the standard library so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
