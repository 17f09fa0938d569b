package board

// Vector is a file/rank displacement used to walk rays and enumerate
// leaper offsets (knight, king). Unlike Square it may carry negative or
// out-of-range components while a ray is being cast off the edge of the
// board; callers must check OnBoard before converting back to a Square.
type Vector struct {
	File int
	Rank int
}

// ToVector returns the file/rank displacement of sq from a1.
func (sq Square) ToVector() Vector {
	return Vector{File: sq.File(), Rank: sq.Rank()}
}

// Add returns the square reached by stepping v away from sq. The result
// may be off-board; check OnBoard before using it as a Square.
func (sq Square) Add(v Vector) Vector {
	vv := sq.ToVector()
	return Vector{File: vv.File + v.File, Rank: vv.Rank + v.Rank}
}

// OnBoard reports whether v names a square inside the 8x8 grid.
func (v Vector) OnBoard() bool {
	return v.File >= 0 && v.File < 8 && v.Rank >= 0 && v.Rank < 8
}

// Square converts an on-board Vector to a Square. Callers must have
// already checked OnBoard.
func (v Vector) Square() Square {
	return NewSquare(v.File, v.Rank)
}

// knightOffsets are the eight L-shaped knight leaps.
var knightOffsets = []Vector{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// kingOffsets are the eight adjacent-square king steps.
var kingOffsets = []Vector{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// orthogonalDirections are the rook's four ray directions.
var orthogonalDirections = []Vector{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// diagonalDirections are the bishop's four ray directions.
var diagonalDirections = []Vector{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// directionsFor returns the ray directions a slider of type pt casts in.
// Pawn, Knight and NoPieceType have no ray directions and return nil.
func directionsFor(pt PieceType) []Vector {
	switch pt {
	case Rook:
		return orthogonalDirections
	case Bishop:
		return diagonalDirections
	case Queen:
		return append(append([]Vector{}, orthogonalDirections...), diagonalDirections...)
	default:
		return nil
	}
}

// castRay walks the board from origin in direction dir, returning every
// on-board square crossed in order, not including origin itself. It stops
// at the edge of the board; the caller is responsible for stopping early
// at the first occupied square.
func castRay(origin Square, dir Vector) []Square {
	var squares []Square
	cur := origin.Add(dir)
	for cur.OnBoard() {
		squares = append(squares, cur.Square())
		cur = cur.Square().Add(dir)
	}
	return squares
}
