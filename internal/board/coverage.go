package board

// CoverKind classifies how a piece covers a square: whether it could move
// there as a quiet push, a capture, either, or whether the square merely
// lies on a slider's ray beyond the enemy king (needed so the king cannot
// "hide" behind itself by stepping one further square down the same ray).
type CoverKind int

const (
	Push CoverKind = iota
	Capture
	PushOrCapture
	RayBeyondKing
)

// CoverRecord is one square's worth of coverage contributed by one piece.
// A single square accumulates zero or more of these, one per piece that
// can reach it.
type CoverRecord struct {
	Origin Square
	Piece  PieceType
	Owner  Side
	Kind   CoverKind
}

// updateCoverage recomputes sqrCoverage from scratch by walking every
// occupied square and recording what it covers. Grounded directly on
// original_source's updateSqrCoverage: pawns record a push for the square(s)
// ahead only when empty, and a capture for each diagonal unconditionally —
// regardless of whether an enemy piece currently sits there. The original
// codebase once guarded the diagonal record on occupancy, which meant an
// empty diagonal in front of a pawn was invisible to the pin/check
// analyzer; that guard is a bug (a pawn still attacks a square whether or
// not an enemy king would be foolish enough to step onto it) and is not
// reproduced here.
func (b *Board) updateCoverage() {
	for sq := 0; sq < 64; sq++ {
		b.sqrCoverage[sq] = nil
	}

	for origin := Square(0); origin < 64; origin++ {
		p := b.cells[origin]
		if p.IsEmpty() {
			continue
		}
		owner := p.Side()
		switch p.Type() {
		case Pawn:
			b.coverPawn(origin, owner)
		case Knight, King:
			offsets := knightOffsets
			if p.Type() == King {
				offsets = kingOffsets
			}
			for _, off := range offsets {
				v := origin.Add(off)
				if !v.OnBoard() {
					continue
				}
				b.addCover(v.Square(), CoverRecord{Origin: origin, Piece: p.Type(), Owner: owner, Kind: PushOrCapture})
			}
		case Bishop, Rook, Queen:
			for _, dir := range directionsFor(p.Type()) {
				b.coverRay(origin, dir, p.Type(), owner)
			}
		}
	}
}

// coverPawn records a White or Black pawn's push and capture coverage.
func (b *Board) coverPawn(origin Square, owner Side) {
	forward := 1
	startRank := 1
	if owner == Black {
		forward = -1
		startRank = 6
	}

	if push := origin.Add(Vector{File: 0, Rank: forward}); push.OnBoard() {
		pushSq := push.Square()
		if b.IsEmpty(pushSq) {
			b.addCover(pushSq, CoverRecord{Origin: origin, Piece: Pawn, Owner: owner, Kind: Push})
			if origin.Rank() == startRank {
				if dbl := origin.Add(Vector{File: 0, Rank: 2 * forward}); dbl.OnBoard() && b.IsEmpty(dbl.Square()) {
					b.addCover(dbl.Square(), CoverRecord{Origin: origin, Piece: Pawn, Owner: owner, Kind: Push})
				}
			}
		}
	}

	for _, df := range []int{-1, 1} {
		if cap := origin.Add(Vector{File: df, Rank: forward}); cap.OnBoard() {
			b.addCover(cap.Square(), CoverRecord{Origin: origin, Piece: Pawn, Owner: owner, Kind: Capture})
		}
	}
}

// coverRay walks a sliding piece's ray in direction dir, recording
// PushOrCapture coverage for each empty or first-occupied square, then one
// further RayBeyondKing record if that first occupant is the enemy king
// (so a checking slider's ray is seen to continue past the king when
// testing whether the king can legally retreat along it).
func (b *Board) coverRay(origin Square, dir Vector, pt PieceType, owner Side) {
	enemyKingInRay := false
	for _, sq := range castRay(origin, dir) {
		if enemyKingInRay {
			b.addCover(sq, CoverRecord{Origin: origin, Piece: pt, Owner: owner, Kind: RayBeyondKing})
			break
		}
		b.addCover(sq, CoverRecord{Origin: origin, Piece: pt, Owner: owner, Kind: PushOrCapture})
		if b.IsEmpty(sq) {
			continue
		}
		occupant := b.cells[sq]
		if occupant.Type() == King && occupant.Side() != owner {
			enemyKingInRay = true
			continue
		}
		break
	}
}

func (b *Board) addCover(sq Square, cr CoverRecord) {
	b.sqrCoverage[sq] = append(b.sqrCoverage[sq], cr)
}

// isCoveredBySide reports whether any piece owned by side covers sq at all
// (a record of any kind, RayBeyondKing included).
func (b *Board) isCoveredBySide(sq Square, side Side) bool {
	for _, cr := range b.sqrCoverage[sq] {
		if cr.Owner == side {
			return true
		}
	}
	return false
}

// isCaptureCoveredBySide reports whether sq is covered as a capture target
// by side. When allowRayBeyondKing is true, RayBeyondKing records count
// too — used when testing whether the king may step further along a
// slider's ray it is already being checked on.
func (b *Board) isCaptureCoveredBySide(sq Square, side Side, allowRayBeyondKing bool) bool {
	for _, cr := range b.sqrCoverage[sq] {
		if cr.Owner != side {
			continue
		}
		switch cr.Kind {
		case Capture, PushOrCapture:
			return true
		case RayBeyondKing:
			if allowRayBeyondKing {
				return true
			}
		}
	}
	return false
}

// coversBySide returns every coverage record on sq owned by side.
func (b *Board) coversBySide(sq Square, side Side) []CoverRecord {
	var out []CoverRecord
	for _, cr := range b.sqrCoverage[sq] {
		if cr.Owner == side {
			out = append(out, cr)
		}
	}
	return out
}
