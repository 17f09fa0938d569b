package board

// updateLegalMoves rebuilds validMoves for every square from the coverage,
// pin, and check state evaluateBoard has already computed. Grounded on
// original_source's updateValidMoves, which branches on whether the side
// to move is in check.
func (b *Board) updateLegalMoves() {
	if b.check == b.sideToMove {
		b.updateLegalMovesInCheck()
	} else {
		b.updateLegalMovesNotInCheck()
	}

	for _, mv := range b.enPassantMoves {
		b.addLegalMove(mv)
	}

	rank := 0
	if b.sideToMove == Black {
		rank = 7
	}
	if b.castleKSValid {
		b.addLegalMove(Move{From: NewSquare(4, rank), To: NewSquare(6, rank)})
	}
	if b.castleQSValid {
		b.addLegalMove(Move{From: NewSquare(4, rank), To: NewSquare(2, rank)})
	}
}

func (b *Board) addLegalMove(mv Move) {
	if b.validMoves[mv.From] == nil {
		b.validMoves[mv.From] = NewMoveList()
	}
	b.validMoves[mv.From].Add(mv)
}

// updateLegalMovesInCheck handles the in-check branch: the king may step
// to any uncovered square. The checking piece(s) are found directly from
// the king's own coverage records (C, per original_source's checkerCvrs),
// not from checkRays — checkRays only ever holds Rook/Bishop/Queen
// attackers, so a Knight or Pawn check would otherwise go uncountered. If
// exactly one piece gives check, any non-pinned piece may capture it; if
// that single check also comes from a slider (checkRays has exactly one
// entry), a non-pinned piece may instead block anywhere along its ray.
func (b *Board) updateLegalMovesInCheck() {
	king := b.kingSquare[b.sideToMove]
	enemy := b.sideToMove.Negate()

	for _, off := range kingOffsets {
		v := king.Add(off)
		if !v.OnBoard() {
			continue
		}
		dst := v.Square()
		if b.SideAt(dst) == b.sideToMove {
			continue
		}
		if b.isCaptureCoveredBySide(dst, enemy, true) {
			continue
		}
		b.addLegalMove(Move{From: king, To: dst})
	}

	checkers := b.coversBySide(king, enemy)
	if len(checkers) != 1 {
		return
	}
	checker := checkers[0].Origin

	var blockSquares []Square
	if len(b.checkRays) == 1 {
		blockSquares = b.checkRays[0].Squares
	}

	for sq := Square(0); sq < 64; sq++ {
		if b.SideAt(sq) != b.sideToMove || b.cells[sq].Type() == King {
			continue
		}
		if b.pinOf(sq) != nil {
			continue
		}
		for _, cr := range b.coversBySide(checker, b.sideToMove) {
			if cr.Origin != sq {
				continue
			}
			if cr.Kind == Capture || cr.Kind == PushOrCapture {
				b.addLegalMove(Move{From: sq, To: checker})
			}
		}
		for _, blockSq := range blockSquares {
			if blockSq == checker {
				continue
			}
			for _, cr := range b.coversBySide(blockSq, b.sideToMove) {
				if cr.Origin != sq {
					continue
				}
				if cr.Kind == Push || cr.Kind == PushOrCapture {
					b.addLegalMove(Move{From: sq, To: blockSq})
				}
			}
		}
	}
}

// updateLegalMovesNotInCheck handles the not-in-check branch: every piece
// moves according to its coverage, restricted to its pin ray if pinned;
// pawns are further restricted so pushes only land on empty squares and
// captures only land on enemy-occupied squares (coverage alone does not
// encode that split, since a pawn covers capture squares whether or not
// anything sits there — see updateCoverage's doc comment). The king moves
// directly rather than via coverage, since it must never move into a
// covered square regardless of whose coverage record technically includes
// its own square.
func (b *Board) updateLegalMovesNotInCheck() {
	enemy := b.sideToMove.Negate()

	for sq := Square(0); sq < 64; sq++ {
		if b.SideAt(sq) != b.sideToMove {
			continue
		}
		p := b.cells[sq]
		if p.Type() == King {
			continue
		}

		pin := b.pinOf(sq)

		for dst := Square(0); dst < 64; dst++ {
			if b.SideAt(dst) == b.sideToMove {
				continue
			}
			if pin != nil && !containsSquare(pin.Squares, dst) {
				continue
			}
			if !b.pieceCoversAsLegalMove(sq, dst, p) {
				continue
			}
			b.addLegalMove(Move{From: sq, To: dst})
		}
	}

	king := b.kingSquare[b.sideToMove]
	for _, off := range kingOffsets {
		v := king.Add(off)
		if !v.OnBoard() {
			continue
		}
		dst := v.Square()
		if b.SideAt(dst) == b.sideToMove {
			continue
		}
		if b.isCaptureCoveredBySide(dst, enemy, false) {
			continue
		}
		b.addLegalMove(Move{From: king, To: dst})
	}
}

// pieceCoversAsLegalMove reports whether the piece on sq (already known to
// be owned by the side to move) covers dst in a way that lets it actually
// move there right now: a pawn push needs dst empty, a pawn capture needs
// dst enemy-occupied, and every other piece type simply needs any
// coverage record of its own at dst.
func (b *Board) pieceCoversAsLegalMove(sq, dst Square, p Piece) bool {
	for _, cr := range b.coversBySide(dst, b.sideToMove) {
		if cr.Origin != sq {
			continue
		}
		if p.Type() != Pawn {
			return true
		}
		switch cr.Kind {
		case Push:
			if b.IsEmpty(dst) {
				return true
			}
		case Capture:
			if b.SideAt(dst) == p.Side().Negate() {
				return true
			}
		}
	}
	return false
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
