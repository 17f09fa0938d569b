package board

import "fmt"

// Move is a coordinate-to-coordinate move: which square a piece leaves and
// which square it lands on. Castling and en passant are ordinary moves of
// this shape — the king's own two-file hop, the pawn's diagonal step onto
// the empty passed-over square — distinguished by the mover and the board
// state at the time, not by a flag carried on the move itself. Promotion
// is likewise not part of a Move; it is supplied out of band to
// RequestMove.
type Move struct {
	From Square
	To   Square
}

// NoMove marks the absence of a move; it is never legal since both of its
// squares are NoSquare.
var NoMove = Move{From: NoSquare, To: NoSquare}

// String returns coordinate notation for the move, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses two concatenated coordinate squares, e.g. "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, fmt.Errorf("invalid move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return Move{From: from, To: to}, nil
}

// MoveList is a growable list of moves, used wherever the board reports a
// set of legal moves.
type MoveList struct {
	moves []Move
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves = append(ml.moves, m)
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Contains reports whether the list contains m.
func (ml *MoveList) Contains(m Move) bool {
	for _, mv := range ml.moves {
		if mv == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a plain slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves
}
