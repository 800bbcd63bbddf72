// Package hashing provides repetition detection for chess games.
package hashing

import (
	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// RepetitionTracker counts how often each position has occurred in a game.
type RepetitionTracker struct {
	// hashTable maps a Zobrist key to the distinct positions seen under it
	hashTable map[uint64][]PositionSignature
	// useExactMatch also compares the FEN position fields, guarding
	// against Zobrist collisions
	useExactMatch bool
	// repeatCount tracks how many recorded positions were repeats
	repeatCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast placement checksum for quick comparison
	WeakHash uint64
	// Key holds the FEN position fields when exact matching is on
	Key string
	// Count is the number of occurrences so far
	Count int
	// FirstPly is the history length when the position first occurred
	FirstPly int
}

// NewRepetitionTracker creates a new repetition tracker.
func NewRepetitionTracker(exactMatch bool) *RepetitionTracker {
	return &RepetitionTracker{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
	}
}

// Record adds the current position of board and returns how many times it
// has now occurred.
func (r *RepetitionTracker) Record(board *chess.Board) int {
	if board == nil {
		return 0
	}

	sig := r.signature(board)
	sigs := r.hashTable[sig.Hash]
	for i := range sigs {
		if r.signaturesMatch(sig, sigs[i]) {
			sigs[i].Count++
			r.repeatCount++
			return sigs[i].Count
		}
	}

	sig.Count = 1
	sig.FirstPly = board.MoveCount()
	r.hashTable[sig.Hash] = append(sigs, sig)
	return 1
}

// Forget removes one occurrence of the current position of board, for a
// move taken back. It reports whether the position was recorded.
func (r *RepetitionTracker) Forget(board *chess.Board) bool {
	if board == nil {
		return false
	}

	sig := r.signature(board)
	sigs := r.hashTable[sig.Hash]
	for i := range sigs {
		if !r.signaturesMatch(sig, sigs[i]) {
			continue
		}
		if sigs[i].Count > 1 {
			sigs[i].Count--
			r.repeatCount--
			return true
		}
		sigs = append(sigs[:i], sigs[i+1:]...)
		if len(sigs) == 0 {
			delete(r.hashTable, sig.Hash)
		} else {
			r.hashTable[sig.Hash] = sigs
		}
		return true
	}
	return false
}

// Count returns how many times the current position of board has occurred.
func (r *RepetitionTracker) Count(board *chess.Board) int {
	if board == nil {
		return 0
	}
	sig := r.signature(board)
	for _, existing := range r.hashTable[sig.Hash] {
		if r.signaturesMatch(sig, existing) {
			return existing.Count
		}
	}
	return 0
}

// Repeated reports whether the current position of board has occurred at
// least limit times.
func (r *RepetitionTracker) Repeated(board *chess.Board, limit int) bool {
	return r.Count(board) >= limit
}

// signature builds the signature of board's current position.
func (r *RepetitionTracker) signature(board *chess.Board) PositionSignature {
	sig := PositionSignature{
		Hash:     board.Hash(),
		WeakHash: WeakHash(board),
	}
	if r.useExactMatch {
		sig.Key = PositionKey(board)
	}
	return sig
}

// signaturesMatch checks if two position signatures match.
func (r *RepetitionTracker) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !r.useExactMatch || a.Key == b.Key
}

// RepeatCount returns the number of recorded positions that were repeats.
func (r *RepetitionTracker) RepeatCount() int {
	return r.repeatCount
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionTracker) UniqueCount() int {
	count := 0
	for _, sigs := range r.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the tracker.
func (r *RepetitionTracker) Reset() {
	r.hashTable = make(map[uint64][]PositionSignature)
	r.repeatCount = 0
}

// WeakHash returns a cheap checksum of the piece placement and side to
// move. It does not see castling rights or the en passant square.
func WeakHash(board *chess.Board) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for r := 0; r < chess.BoardSize; r++ {
		for c := 0; c < chess.BoardSize; c++ {
			var code uint64
			if p := board.Occupant(r, c); p != nil {
				code = uint64(p.Letter())
			}
			hash = hash*multiplier + code
		}
	}
	return hash*multiplier + uint64(board.SideToMove())
}

// PositionKey returns the placement, side, castling and en passant fields
// of board's FEN, the parts that decide whether two positions repeat.
func PositionKey(board *chess.Board) string {
	fen := board.FEN()
	for i, spaces := 0, 0; i < len(fen); i++ {
		if fen[i] == ' ' {
			spaces++
			if spaces == 4 {
				return fen[:i]
			}
		}
	}
	return fen
}
