package playfield

// Point is an absolute cell coordinate. Row grows downward; negative rows are
// above the visible grid.
type Point struct {
	Col, Row int
}

// Piece is a positioned, rotatable instance of a shape kind.
// Moves and rotations always succeed; callers check Grid.IsValid before or after
// and undo when the result is illegal.
type Piece struct {
	X, Y     int
	Kind     Kind
	Rotation int
}

// Spawn returns a rotation-0 piece anchored at the given column on row 0.
func Spawn(kind Kind, column int) Piece {
	return Piece{X: column, Y: 0, Kind: kind}
}

// Blocks returns the absolute cells covered by the piece in its current rotation.
func (p Piece) Blocks() [4]Point {
	var blocks [4]Point
	for i, off := range Offsets(p.Kind, p.Rotation) {
		blocks[i] = Point{Col: p.X + off.DX, Row: p.Y + off.DY}
	}
	return blocks
}

// Move translates the anchor by whole cells.
func (p *Piece) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Rotate advances to the next rotation state and returns the previous index so
// an invalid rotation can be undone with RotateBack.
func (p *Piece) Rotate() int {
	prev := p.Rotation
	p.Rotation = (p.Rotation + 1) % RotationCount(p.Kind)
	return prev
}

// RotateBack restores a rotation index previously returned by Rotate.
func (p *Piece) RotateBack(prev int) {
	p.Rotation = prev
}
