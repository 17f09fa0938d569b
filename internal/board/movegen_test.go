package board

import "testing"

func emptyBoard() *Board {
	b := &Board{}
	for sq := 0; sq < 64; sq++ {
		b.cells[sq] = NoPiece
	}
	b.status = InProgress
	return b
}

func TestMinimalStalemate(t *testing.T) {
	// White king a1, Black king c2, Black queen b3, White to move.
	b := emptyBoard()
	b.setCell(NewSquare(0, 0), WhiteKing)
	b.setCell(NewSquare(2, 1), BlackKing)
	b.setCell(NewSquare(1, 2), BlackQueen)
	b.sideToMove = White
	b.evaluateBoard()

	t.Log(b)
	if b.Check() != NoSide {
		t.Fatalf("expected no check in stalemate position")
	}
	if b.Status() != Stalemate {
		t.Errorf("expected Stalemate, got %s", b.Status())
	}
	if b.Winner() != NoSide {
		t.Errorf("expected no winner in stalemate, got %s", b.Winner())
	}
}

func TestEnPassantWindow(t *testing.T) {
	b := emptyBoard()
	b.setCell(NewSquare(0, 0), WhiteKing)
	b.setCell(NewSquare(7, 7), BlackKing)
	b.setCell(NewSquare(4, 1), WhitePawn)
	b.setCell(NewSquare(3, 3), BlackPawn)
	b.sideToMove = White
	b.evaluateBoard()

	playAll(t, b, "e2e4")

	ep := Move{From: NewSquare(3, 3), To: NewSquare(4, 2)}
	if !b.validMoves[ep.From].Contains(ep) {
		t.Fatalf("expected en passant capture to be legal immediately after the double push")
	}

	if res := b.RequestMove(ep, NoPieceType); res != Success {
		t.Fatalf("en passant capture rejected")
	}
	if !b.IsEmpty(NewSquare(4, 3)) {
		t.Errorf("expected the double-pushed pawn to be captured")
	}
	if b.PieceAt(NewSquare(4, 2)) != BlackPawn {
		t.Errorf("expected black pawn to land on e3")
	}
}

func TestEnPassantWindowExpires(t *testing.T) {
	b := emptyBoard()
	b.setCell(NewSquare(0, 0), WhiteKing)
	b.setCell(NewSquare(7, 7), BlackKing)
	b.setCell(NewSquare(4, 1), WhitePawn)
	b.setCell(NewSquare(3, 3), BlackPawn)
	b.setCell(NewSquare(0, 6), BlackPawn)
	b.setCell(NewSquare(0, 1), WhitePawn)
	b.sideToMove = White
	b.evaluateBoard()

	playAll(t, b, "e2e4", "a7a6", "a2a3")

	ep := Move{From: NewSquare(3, 3), To: NewSquare(4, 2)}
	if b.validMoves[ep.From] != nil && b.validMoves[ep.From].Contains(ep) {
		t.Errorf("expected en passant window to have expired after an intervening move")
	}
}

func TestPinPreventsCapture(t *testing.T) {
	// White king e1, White bishop e2, Black rook e8, Black king h8, White
	// to move. The rook pins the bishop to the king along the e-file; the
	// bishop may not step off that file even to capture.
	b := emptyBoard()
	b.setCell(NewSquare(4, 0), WhiteKing)
	b.setCell(NewSquare(4, 1), WhiteBishop)
	b.setCell(NewSquare(4, 7), BlackRook)
	b.setCell(NewSquare(7, 7), BlackKing)
	b.sideToMove = White
	b.evaluateBoard()

	t.Log(b)
	moves := b.LegalMovesFrom(NewSquare(4, 1))
	for _, mv := range moves {
		if mv.To.File() != 4 {
			t.Errorf("pinned bishop made an off-file move to %s", mv.To)
		}
	}
}

func TestCastlingBlockedByAttack(t *testing.T) {
	b := emptyBoard()
	b.setCell(NewSquare(4, 0), WhiteKing)
	b.setCell(NewSquare(7, 0), WhiteRook)
	b.setCell(NewSquare(5, 7), BlackRook) // f8, covers f1
	b.setCell(NewSquare(0, 7), BlackKing)
	b.sideToMove = White
	b.evaluateBoard()

	t.Log(b)
	if b.castleKSValid {
		t.Errorf("expected kingside castling to be denied while f1 is attacked")
	}
}

func TestCastlingDeniedWhileInCheck(t *testing.T) {
	b := emptyBoard()
	b.setCell(NewSquare(4, 0), WhiteKing)
	b.setCell(NewSquare(7, 0), WhiteRook)
	b.setCell(NewSquare(4, 7), BlackRook) // checks e1 along the e-file
	b.setCell(NewSquare(0, 7), BlackKing)
	b.sideToMove = White
	b.evaluateBoard()

	t.Log(b)
	if b.Check() != White {
		t.Fatalf("expected white king to be in check")
	}
	if b.castleKSValid || b.castleQSValid {
		t.Errorf("expected castling to be denied while king is in check")
	}
}

func TestQueensideCastleRespectsOwnRook(t *testing.T) {
	// Regression for the queenside-castle rook-flag mix-up: moving the
	// kingside rook must not affect queenside castling eligibility.
	b := emptyBoard()
	b.setCell(NewSquare(4, 0), WhiteKing)
	b.setCell(NewSquare(0, 0), WhiteRook)
	b.setCell(NewSquare(7, 0), WhiteRook)
	b.setCell(NewSquare(4, 7), BlackKing)
	b.sideToMove = White
	b.evaluateBoard()

	playAll(t, b, "h1g1", "e8e7", "g1h1", "e7e8")

	if !b.castleQSValid {
		t.Errorf("expected queenside castling to remain valid after only the kingside rook moved")
	}
}
