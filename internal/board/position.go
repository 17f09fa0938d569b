package board

import "fmt"

// Status describes the overall state of a game.
type Status int

const (
	InProgress Status = iota
	Checkmate
	Stalemate
)

// String returns the status's name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// Board is a complete, self-contained chess position together with the
// bookkeeping needed to generate legal moves and apply them: piece
// placement, whose turn it is, castling and en passant eligibility, and
// the game's terminal status. It corresponds to original_source's Board
// class; every public method here has a same-named counterpart there.
type Board struct {
	cells [64]Piece

	sideToMove Side
	kingSquare [2]Square

	kingMoved    [2]bool
	rookKSMoved  [2]bool
	rookQSMoved  [2]bool
	castleKSValid bool
	castleQSValid bool

	enPassantMoves []Move

	sqrCoverage [64][]CoverRecord
	pinRays     []PinRay
	checkRays   []CheckRay
	check       Side

	validMoves [64]*MoveList

	status Status
	winner Side
}

// NewBoard returns a Board set up for the start of a game.
func NewBoard() *Board {
	b := &Board{}
	b.Setup()
	return b
}

// Setup resets the board to the standard starting position: all sixteen
// pieces per side on their usual squares, White to move, both sides
// retaining full castling rights, no en passant window, game in progress.
func (b *Board) Setup() {
	*b = Board{}
	for sq := 0; sq < 64; sq++ {
		b.cells[sq] = NoPiece
	}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, pt := range backRank {
		b.setCell(NewSquare(file, 0), NewPiece(pt, White))
		b.setCell(NewSquare(file, 7), NewPiece(pt, Black))
		b.setCell(NewSquare(file, 1), NewPiece(Pawn, White))
		b.setCell(NewSquare(file, 6), NewPiece(Pawn, Black))
	}

	b.sideToMove = White
	b.status = InProgress
	b.winner = NoSide

	b.evaluateBoard()
}

// setCell places p on sq, keeping kingSquare in sync.
func (b *Board) setCell(sq Square, p Piece) {
	b.cells[sq] = p
	if p.Type() == King {
		b.kingSquare[p.Side()] = sq
	}
}

// clearCell empties sq and returns what was there.
func (b *Board) clearCell(sq Square) Piece {
	p := b.cells[sq]
	b.cells[sq] = NoPiece
	return p
}

// PieceAt returns the piece occupying sq, or NoPiece if sq is empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.cells[sq]
}

// SideAt returns the side occupying sq, or NoSide if sq is empty.
func (b *Board) SideAt(sq Square) Side {
	return b.cells[sq].Side()
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.cells[sq].IsEmpty()
}

// OnBoard reports whether sq is a valid board square.
func (b *Board) OnBoard(sq Square) bool {
	return sq.OnBoard()
}

// Check returns which side, if any, is currently in check. The engine
// only ever evaluates check for the side to move — a position where the
// side not to move is left in check is an invariant violation of the
// previous move and is never produced.
func (b *Board) Check() Side {
	return b.check
}

// SideToMove returns whose turn it is.
func (b *Board) SideToMove() Side {
	return b.sideToMove
}

// Status returns the game's current terminal status.
func (b *Board) Status() Status {
	return b.status
}

// Winner returns the winning side, or NoSide if the game has no winner
// (in progress, or drawn by stalemate).
func (b *Board) Winner() Side {
	return b.winner
}

// LegalMovesFrom returns the legal destination moves for the piece on sq,
// or an empty list if sq is empty or has no legal moves.
func (b *Board) LegalMovesFrom(sq Square) []Move {
	if !sq.OnBoard() || b.validMoves[sq] == nil {
		return nil
	}
	return b.validMoves[sq].Slice()
}

// TotalLegalMoveCount returns the number of legal moves available to the
// side to move, across every origin square.
func (b *Board) TotalLegalMoveCount() int {
	n := 0
	for sq := 0; sq < 64; sq++ {
		if b.validMoves[sq] != nil {
			n += b.validMoves[sq].Len()
		}
	}
	return n
}

// String renders an ASCII diagram of the board for debugging and test
// diagnostics, in the same register as the teacher's Position.String.
func (b *Board) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			p := b.cells[NewSquare(file, rank)]
			if p.IsEmpty() {
				s += ". "
			} else {
				s += p.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", b.sideToMove)
	s += fmt.Sprintf("Check: %s\n", b.check)
	s += fmt.Sprintf("Status: %s\n", b.status)
	return s
}

// evaluateBoard recomputes every derived piece of state — coverage, pins,
// checks, castling eligibility, legal moves, and terminal status — from
// the current cells and side to move. Grounded on original_source's
// evaluateBoard; called once after setup and once after every applied
// move.
func (b *Board) evaluateBoard() {
	b.sqrCoverage = [64][]CoverRecord{}
	b.pinRays = nil
	b.checkRays = nil
	b.check = NoSide
	b.validMoves = [64]*MoveList{}

	b.updateCoverage()

	enemy := b.sideToMove.Negate()
	if b.isCoveredBySide(b.kingSquare[b.sideToMove], enemy) {
		b.check = b.sideToMove
	}

	b.updateKingRays(Rook)
	b.updateKingRays(Bishop)

	b.updateCastling()
	b.updateLegalMoves()

	if b.TotalLegalMoveCount() == 0 {
		if b.check == b.sideToMove {
			b.status = Checkmate
			b.winner = enemy
		} else {
			b.status = Stalemate
			b.winner = NoSide
		}
	} else {
		b.status = InProgress
		b.winner = NoSide
	}
}
