// Package errors provides sentinel errors and error types for the chess engine.
// Illegal-state errors mark programmer mistakes (a missing king, a move made
// twice); invalid-argument errors mark bad input at the board boundary. Both
// families can be inspected with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Root sentinels. Every more specific sentinel below wraps one of these.
var (
	// ErrIllegalState indicates a violated engine invariant.
	ErrIllegalState = errors.New("illegal state")

	// ErrInvalidArgument indicates a bad value passed to a board or move API.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Illegal-state sentinels.
var (
	// ErrNoKing indicates that a required king is not on the board.
	ErrNoKing = fmt.Errorf("%w: no king on board", ErrIllegalState)

	// ErrMoveMade indicates Make was called twice without Unmake.
	ErrMoveMade = fmt.Errorf("%w: move already made", ErrIllegalState)

	// ErrMoveNotMade indicates Unmake (or a made-state query) before Make.
	ErrMoveNotMade = fmt.Errorf("%w: move not made", ErrIllegalState)

	// ErrNotCastling indicates the castling undo path was used for another move type.
	ErrNotCastling = fmt.Errorf("%w: not a castling move", ErrIllegalState)

	// ErrStaleMove indicates the board no longer holds the piece a move was built for.
	ErrStaleMove = fmt.Errorf("%w: stale move", ErrIllegalState)
)

// Invalid-argument sentinels.
var (
	// ErrOffBoard indicates coordinates outside the 8x8 grid.
	ErrOffBoard = fmt.Errorf("%w: square off board", ErrInvalidArgument)

	// ErrBadEnPassant indicates an en passant square outside rows 2 and 5.
	ErrBadEnPassant = fmt.Errorf("%w: bad en passant square", ErrInvalidArgument)

	// ErrNotAligned indicates two squares that share no rank, file or diagonal.
	ErrNotAligned = fmt.Errorf("%w: squares not aligned", ErrInvalidArgument)

	// ErrOccupied indicates a placement onto an occupied square.
	ErrOccupied = fmt.Errorf("%w: square occupied", ErrInvalidArgument)
)

// MoveError wraps errors with move context. It is the value carried by
// panics raised from Make and Unmake, and the error returned when a move
// is rejected at the board boundary.
type MoveError struct {
	Err  error  // The underlying error
	Move string // Coordinate text of the move, e.g. "e2e4"
	Ply  int    // Ply number where the error occurred (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// SquareError represents an error tied to a board coordinate.
type SquareError struct {
	Err    error  // The underlying error
	Square string // Algebraic or (row,col) text of the square
	Detail string // Extra detail, e.g. the offending piece
}

// Error returns a formatted error message with square context.
func (e *SquareError) Error() string {
	var parts []string

	if e.Square != "" {
		parts = append(parts, "square "+e.Square)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
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
	return "square error"
}

// Unwrap returns the underlying error.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// IsIllegalState reports whether err is an engine invariant violation.
func IsIllegalState(err error) bool {
	return errors.Is(err, ErrIllegalState)
}

// IsInvalidArgument reports whether err is a rejected input value.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// Is reports whether any error in err's tree matches target.
// It mirrors the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
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
