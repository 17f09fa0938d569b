package board

import "testing"

// playAll plays a sequence of coordinate moves (e.g. "e2e4") in order and
// fails the test immediately if any of them is rejected.
func playAll(t *testing.T, b *Board, moves ...string) {
	t.Helper()
	for _, s := range moves {
		mv, err := ParseMove(s)
		if err != nil {
			t.Fatalf("bad move string %q: %v", s, err)
		}
		if res := b.RequestMove(mv, NoPieceType); res != Success {
			t.Fatalf("move %s rejected, board:\n%s", s, b)
		}
	}
}

func TestScholarsMate(t *testing.T) {
	b := NewBoard()
	playAll(t, b,
		"e2e4", "e7e5",
		"f1c4", "b8c6",
		"d1h5", "g8f6",
		"h5f7",
	)

	t.Log(b)
	if b.Status() != Checkmate {
		t.Errorf("expected Checkmate, got %s", b.Status())
	}
	if b.Winner() != White {
		t.Errorf("expected White to win, got %s", b.Winner())
	}
	if b.Check() != Black {
		t.Errorf("expected Black in check, got %s", b.Check())
	}
	if b.TotalLegalMoveCount() != 0 {
		t.Errorf("expected 0 legal moves, got %d", b.TotalLegalMoveCount())
	}
}

func TestFoolsMate(t *testing.T) {
	b := NewBoard()
	playAll(t, b,
		"f2f3", "e7e5",
		"g2g4", "d8h4",
	)

	t.Log(b)
	if b.Status() != Checkmate {
		t.Errorf("expected Checkmate, got %s", b.Status())
	}
	if b.Winner() != Black {
		t.Errorf("expected Black to win, got %s", b.Winner())
	}
}

func TestNotCheckmateKingCanCapture(t *testing.T) {
	// White: Ka1, Rg8 (undefended). Black: Kh8. Black to move can take
	// the rook, so this is check but not checkmate.
	b := &Board{}
	for sq := 0; sq < 64; sq++ {
		b.cells[sq] = NoPiece
	}
	b.setCell(NewSquare(0, 0), WhiteKing)
	b.setCell(NewSquare(7, 7), BlackKing)
	b.setCell(NewSquare(6, 7), WhiteRook)
	b.sideToMove = Black
	b.status = InProgress
	b.evaluateBoard()

	t.Log(b)
	if b.Check() != Black {
		t.Fatalf("expected black king to be in check")
	}
	if b.Status() == Checkmate {
		t.Errorf("expected not checkmate (king can capture rook), got Checkmate")
	}
}
