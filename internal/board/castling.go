package board

// updateCastling recomputes castleKSValid/castleQSValid for the side to
// move. Grounded on original_source's updateCastle, with two corrections:
//
//  1. The queenside branch there tests rookKSMoved instead of
//     rookQSMoved — a copy-paste mistake that lets queenside castling
//     survive the kingside rook moving. Here each branch tests its own
//     rook's flag.
//  2. Neither branch there checks whether the king is presently in
//     check. A king may not castle out of check even though the squares
//     it crosses are otherwise clear and uncovered; this check is added.
func (b *Board) updateCastling() {
	b.castleKSValid = false
	b.castleQSValid = false

	side := b.sideToMove
	enemy := side.Negate()
	rank := 0
	if side == Black {
		rank = 7
	}

	if b.kingMoved[side] || b.kingSquare[side] != NewSquare(4, rank) {
		return
	}
	if b.check == side {
		return
	}

	if !b.rookKSMoved[side] && b.cells[NewSquare(7, rank)] == NewPiece(Rook, side) {
		f := NewSquare(5, rank)
		g := NewSquare(6, rank)
		if b.IsEmpty(f) && b.IsEmpty(g) &&
			!b.isCoveredBySide(f, enemy) && !b.isCoveredBySide(g, enemy) {
			b.castleKSValid = true
		}
	}

	if !b.rookQSMoved[side] && b.cells[NewSquare(0, rank)] == NewPiece(Rook, side) {
		b2 := NewSquare(1, rank)
		c := NewSquare(2, rank)
		d := NewSquare(3, rank)
		if b.IsEmpty(b2) && b.IsEmpty(c) && b.IsEmpty(d) &&
			!b.isCoveredBySide(c, enemy) && !b.isCoveredBySide(d, enemy) {
			b.castleQSValid = true
		}
	}
}
