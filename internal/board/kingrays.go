package board

// PinRay records a friendly piece pinned against its own king: blocker is
// the pinned piece's square, attacker is the enemy slider square, and
// squares lists the ray from the square next to the king up to and
// including the attacker (the blocker's own square among them) — the only
// squares the pinned piece may still move to without exposing its king.
type PinRay struct {
	Blocker  Square
	Attacker Square
	Squares  []Square
}

// CheckRay records a slider currently giving check: king is the checked
// king's square, attacker is the checking slider's square, and squares is
// the ray between them plus the attacker — the only squares a non-king
// piece may move to in order to block or capture the check.
type CheckRay struct {
	King     Square
	Attacker Square
	Squares  []Square
}

// updateKingRays casts a ray from the side-to-move's king in every
// direction a rook or bishop moves, per dirPiece, looking for an enemy
// slider of that geometry (or a queen, which attacks both ways). The first
// friendly piece encountered before any attacker is a candidate pinned
// piece; if an attacker is found after it, the ray becomes a PinRay. If an
// attacker is found with no friendly piece in between, the ray is a
// CheckRay. Grounded on original_source's updateKingRays, called once with
// dirPiece=Rook and once with dirPiece=Bishop.
func (b *Board) updateKingRays(dirPiece PieceType) {
	king := b.kingSquare[b.sideToMove]

	for _, dir := range directionsFor(dirPiece) {
		ray := castRay(king, dir)
		var blocker Square = NoSquare
		var raySquares []Square

		for _, sq := range ray {
			raySquares = append(raySquares, sq)
			if b.IsEmpty(sq) {
				continue
			}
			occupant := b.cells[sq]
			if occupant.Side() == b.sideToMove {
				if blocker != NoSquare {
					break
				}
				blocker = sq
				continue
			}
			// Enemy piece: does its geometry attack along dirPiece's rays?
			if occupant.Type() == dirPiece || occupant.Type() == Queen {
				if blocker != NoSquare {
					b.pinRays = append(b.pinRays, PinRay{Blocker: blocker, Attacker: sq, Squares: raySquares})
				} else {
					b.checkRays = append(b.checkRays, CheckRay{King: king, Attacker: sq, Squares: raySquares})
				}
			}
			break
		}
	}
}

// pinOf returns the PinRay pinning sq, or nil if sq is not pinned.
func (b *Board) pinOf(sq Square) *PinRay {
	for i := range b.pinRays {
		if b.pinRays[i].Blocker == sq {
			return &b.pinRays[i]
		}
	}
	return nil
}
